package mapper

import (
	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/pkg/api"
)

// slot binds one fixed card field to the remote type discriminators that may fill it.
// An empty kinds list matches any discriminator and must be the last rule of its table.
type slot[F any] struct {
	field func(c *models.Card) *F
	emit  string
	kinds []string
}

func (s slot[F]) matches(kind string) bool {
	if len(s.kinds) == 0 {
		return true
	}
	for _, k := range s.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// fillSlots распределяет повторяющиеся удаленные значения по фиксированным слотам карточки.
// Первое значение каждого типа выигрывает; значения неизвестных типов отбрасываются.
// Слот считается занятым даже если значение пустое.
func fillSlots[T, F any](card *models.Card, values []T, kindOf func(T) string, valueOf func(T) (F, bool), rules []slot[F]) {
	filled := make([]bool, len(rules))
	for _, v := range values {
		kind := kindOf(v)
		for i, r := range rules {
			if !r.matches(kind) {
				continue
			}
			if !filled[i] {
				if value, ok := valueOf(v); ok {
					*r.field(card) = value
				}
				filled[i] = true
			}
			break
		}
	}
}

// collectSlots is the reverse of fillSlots: it emits one remote value per non-empty slot
// in table order, tagged with the slot's emit discriminator.
func collectSlots[T, F any](card *models.Card, rules []slot[F], isEmpty func(F) bool, build func(kind string, value F) T) []T {
	var out []T
	for _, r := range rules {
		value := *r.field(card)
		if isEmpty(value) {
			continue
		}
		out = append(out, build(r.emit, value))
	}
	return out
}

var phoneSlots = []slot[string]{
	{kinds: []string{"work"}, emit: "work", field: func(c *models.Card) *string { return &c.WorkPhone }},
	{kinds: []string{"home"}, emit: "home", field: func(c *models.Card) *string { return &c.HomePhone }},
	{kinds: []string{"workFax", "homeFax"}, emit: "workFax", field: func(c *models.Card) *string { return &c.FaxNumber }},
	{kinds: []string{"pager"}, emit: "pager", field: func(c *models.Card) *string { return &c.PagerNumber }},
	{kinds: []string{"mobile"}, emit: "mobile", field: func(c *models.Card) *string { return &c.CellularNumber }},
}

var addressSlots = []slot[models.PostalAddress]{
	{kinds: []string{"home"}, emit: "home", field: func(c *models.Card) *models.PostalAddress { return &c.HomeAddress }},
	{kinds: []string{"work"}, emit: "work", field: func(c *models.Card) *models.PostalAddress { return &c.WorkAddress }},
}

// urlSlots: всё, что не "work", попадает в личный слот.
var urlSlots = []slot[string]{
	{kinds: []string{"work"}, emit: "work", field: func(c *models.Card) *string { return &c.WebPage1 }},
	{emit: "other", field: func(c *models.Card) *string { return &c.WebPage2 }},
}

var imSlots = []slot[string]{
	{kinds: []string{"googleTalk"}, emit: "googleTalk", field: func(c *models.Card) *string { return &c.GoogleTalk }},
	{kinds: []string{"aim"}, emit: "aim", field: func(c *models.Card) *string { return &c.AIM }},
	{kinds: []string{"yahoo"}, emit: "yahoo", field: func(c *models.Card) *string { return &c.Yahoo }},
	{kinds: []string{"skype"}, emit: "skype", field: func(c *models.Card) *string { return &c.Skype }},
	{kinds: []string{"qq"}, emit: "qq", field: func(c *models.Card) *string { return &c.QQ }},
	{kinds: []string{"msn"}, emit: "msn", field: func(c *models.Card) *string { return &c.MSN }},
	{kinds: []string{"icq"}, emit: "icq", field: func(c *models.Card) *string { return &c.ICQ }},
	{kinds: []string{"jabber"}, emit: "jabber", field: func(c *models.Card) *string { return &c.Jabber }},
}

// Positional slots: the n-th remote value fills the n-th slot regardless of its type.
var emailSlots = []func(c *models.Card) *string{
	func(c *models.Card) *string { return &c.PrimaryEmail },
	func(c *models.Card) *string { return &c.SecondEmail },
}

var customSlots = []func(c *models.Card) *string{
	func(c *models.Card) *string { return &c.Custom1 },
	func(c *models.Card) *string { return &c.Custom2 },
	func(c *models.Card) *string { return &c.Custom3 },
	func(c *models.Card) *string { return &c.Custom4 },
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

func isEmptyString(s string) bool {
	return s == ""
}

func addressFromRemote(a api.Address) (models.PostalAddress, bool) {
	return models.PostalAddress{
		Street:  a.StreetAddress,
		Street2: a.ExtendedAddress,
		City:    a.City,
		State:   a.Region,
		ZipCode: a.PostalCode,
		Country: a.Country,
	}, true
}

func addressToRemote(kind string, a models.PostalAddress) api.Address {
	return api.Address{
		Type:            kind,
		StreetAddress:   a.Street,
		ExtendedAddress: a.Street2,
		City:            a.City,
		Region:          a.State,
		PostalCode:      a.ZipCode,
		Country:         a.Country,
	}
}
