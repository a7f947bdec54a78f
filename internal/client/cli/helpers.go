package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/gophbook/internal/models"
)

func render(w io.Writer, tmpl string, data any) error {
	t, err := template.New("output").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

// field строка подробного вывода карточки
type field struct {
	Label string
	Value string
}

func formatAddress(a models.PostalAddress) string {
	parts := []string{a.Street, a.Street2, a.City, a.State, a.ZipCode, a.Country}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// cardFields перечисляет заполненные поля карточки в порядке вывода
func cardFields(card models.Card) []field {
	all := []field{
		{"First name", card.FirstName},
		{"Last name", card.LastName},
		{"Display name", card.DisplayName},
		{"Nickname", card.NickName},
		{"Email", card.PrimaryEmail},
		{"Second email", card.SecondEmail},
		{"Work phone", card.WorkPhone},
		{"Home phone", card.HomePhone},
		{"Fax", card.FaxNumber},
		{"Pager", card.PagerNumber},
		{"Mobile", card.CellularNumber},
		{"Home address", formatAddress(card.HomeAddress)},
		{"Work address", formatAddress(card.WorkAddress)},
		{"Company", card.Company},
		{"Job title", card.JobTitle},
		{"Department", card.Department},
		{"Web page", card.WebPage1},
		{"Home page", card.WebPage2},
		{"Birthday", card.Birthday},
		{"Anniversary", card.Anniversary},
		{"Custom 1", card.Custom1},
		{"Custom 2", card.Custom2},
		{"Custom 3", card.Custom3},
		{"Custom 4", card.Custom4},
		{"Google Talk", card.GoogleTalk},
		{"AIM", card.AIM},
		{"Yahoo", card.Yahoo},
		{"Skype", card.Skype},
		{"QQ", card.QQ},
		{"MSN", card.MSN},
		{"ICQ", card.ICQ},
		{"Jabber", card.Jabber},
		{"Notes", card.Notes},
	}

	fields := all[:0]
	for _, f := range all {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func formatTimestamp(ts int64) string {
	if ts == 0 {
		return "never"
	}
	return time.Unix(ts, 0).Format(time.RFC3339)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
