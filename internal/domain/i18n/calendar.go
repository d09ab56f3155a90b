package i18n

import (
	"fmt"
	"strings"
	"time"
)

var shortMonths = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"uk": {"січ.", "лют.", "бер.", "квіт.", "трав.", "черв.", "лип.", "серп.", "вер.", "жовт.", "лист.", "груд."},
	"ru": {"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
}

var longMonths = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"uk": {"січень", "лютий", "березень", "квітень", "травень", "червень", "липень", "серпень", "вересень", "жовтень", "листопад", "грудень"},
	"ru": {"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
}

var weekdays = map[string][7]string{
	"en": {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	"uk": {"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"},
	"ru": {"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
}

// ShortDate renders "02 Jun" style labels used by period triggers and filter chips.
func ShortDate(t time.Time, lang string) string {
	names, ok := shortMonths[lang]
	if !ok {
		names = shortMonths[DefaultLang]
	}
	return fmt.Sprintf("%02d %s", t.Day(), names[t.Month()-1])
}

// MonthTitle renders the capitalized "June 2024" header of a calendar month.
func MonthTitle(t time.Time, lang string) string {
	names, ok := longMonths[lang]
	if !ok {
		names = longMonths[DefaultLang]
	}
	return capitalize(names[t.Month()-1]) + " " + fmt.Sprint(t.Year())
}

// Weekdays returns Monday-first weekday labels.
func Weekdays(lang string) []string {
	labels, ok := weekdays[lang]
	if !ok {
		labels = weekdays[DefaultLang]
	}
	return labels[:]
}

func capitalize(value string) string {
	if value == "" {
		return ""
	}
	r := []rune(value)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
