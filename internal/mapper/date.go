package mapper

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/gophbook/pkg/api"
)

// datePlaceholder stands for a missing date component.
const datePlaceholder = '-'

// ErrInvalidDate is returned by ParseDate for strings that are not in the encoded form.
var ErrInvalidDate = errors.New("invalid encoded date")

// FormatDate кодирует дату в строку вида YYYY-MM-DD, заменяя каждую отсутствующую часть на "-".
// Пример: {Month: 12, Day: 25} -> "--12-25".
func FormatDate(d api.Date) string {
	if d.IsZero() {
		return ""
	}
	return component(d.Year, 4) + "-" + component(d.Month, 2) + "-" + component(d.Day, 2)
}

func component(v, width int) string {
	if v <= 0 {
		return string(datePlaceholder)
	}
	return fmt.Sprintf("%0*d", width, v)
}

// ParseDate decodes a string produced by FormatDate. Components are consumed left to right:
// either the placeholder or a fixed-width literal (year 4, month 2, day 2), separated by '-'.
func ParseDate(s string) (api.Date, error) {
	var d api.Date
	if s == "" {
		return d, nil
	}

	p := dateParser{s: s}
	var err error
	if d.Year, err = p.component(4); err != nil {
		return api.Date{}, err
	}
	if err = p.separator(); err != nil {
		return api.Date{}, err
	}
	if d.Month, err = p.component(2); err != nil {
		return api.Date{}, err
	}
	if err = p.separator(); err != nil {
		return api.Date{}, err
	}
	if d.Day, err = p.component(2); err != nil {
		return api.Date{}, err
	}
	if p.pos != len(s) {
		return api.Date{}, fmt.Errorf("%w: trailing characters in %q", ErrInvalidDate, s)
	}
	if d.Month > 12 || d.Day > 31 {
		return api.Date{}, fmt.Errorf("%w: %q out of range", ErrInvalidDate, s)
	}
	return d, nil
}

type dateParser struct {
	s   string
	pos int
}

func (p *dateParser) component(width int) (int, error) {
	if p.pos >= len(p.s) {
		return 0, fmt.Errorf("%w: %q is too short", ErrInvalidDate, p.s)
	}
	if p.s[p.pos] == datePlaceholder {
		p.pos++
		return 0, nil
	}
	if p.pos+width > len(p.s) {
		return 0, fmt.Errorf("%w: %q is too short", ErrInvalidDate, p.s)
	}
	literal := p.s[p.pos : p.pos+width]
	for _, r := range literal {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidDate, literal)
		}
	}
	v, err := strconv.Atoi(literal)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	p.pos += width
	return v, nil
}

func (p *dateParser) separator() error {
	if p.pos >= len(p.s) || p.s[p.pos] != '-' {
		return fmt.Errorf("%w: missing separator in %q", ErrInvalidDate, p.s)
	}
	p.pos++
	return nil
}
