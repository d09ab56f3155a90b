package dto

import "travelgo/internal/domain/i18n"

// CopyBlock is one localized region of the copy document.
type CopyBlock struct {
	Region string     `json:"region"`
	Lang   string     `json:"lang"`
	Values i18n.Block `json:"values"`
}
