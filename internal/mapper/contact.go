package mapper

import (
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/pkg/api"
)

// ErrInvalidArgument is returned when a required record is missing.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	emailTypeOther   = "other"
	eventAnniversary = "anniversary"
	customKeyPrefix  = "Custom"
)

// Options управляет преобразованием контактов.
type Options struct {
	// Now is used to timestamp synthetic addresses; time.Now when nil.
	Now func() time.Time
	// UseFakeEmailAddresses makes ContactToLocal fabricate an address for people without one
	// and makes ContactToRemote drop such addresses.
	UseFakeEmailAddresses bool
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// ContactToLocal overwrites every managed slot of the item's card with the person's data.
// The synchronization metadata (ResourceName, ETag) is left to the caller.
func ContactToLocal(item *models.Item, person *api.Person, opts Options) (*models.Item, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: local item is nil", ErrInvalidArgument)
	}
	if person == nil {
		return nil, fmt.Errorf("%w: remote person is nil", ErrInvalidArgument)
	}

	// Синтетический адрес переиспользуется, чтобы повторное применение давало тот же результат
	previousFake := ""
	if IsFakeEmailAddress(item.Card.PrimaryEmail) {
		previousFake = item.Card.PrimaryEmail
	}

	item.Card = models.Card{}
	card := &item.Card

	if len(person.Names) > 0 {
		card.FirstName = person.Names[0].GivenName
		card.LastName = person.Names[0].FamilyName
		card.DisplayName = person.Names[0].DisplayName
	}
	if len(person.Nicknames) > 0 {
		card.NickName = person.Nicknames[0].Value
	}

	n := 0
	for _, e := range person.EmailAddresses {
		if n >= len(emailSlots) {
			break
		}
		if e.Value == "" {
			continue
		}
		*emailSlots[n](card) = e.Value
		n++
	}
	if n == 0 && opts.UseFakeEmailAddresses {
		card.PrimaryEmail = previousFake
		if card.PrimaryEmail == "" {
			card.PrimaryEmail = NewFakeEmailAddress(opts.now())
		}
	}

	fillSlots(card, person.PhoneNumbers,
		func(p api.PhoneNumber) string { return p.Type },
		func(p api.PhoneNumber) (string, bool) { return nonEmpty(p.Value) },
		phoneSlots)
	fillSlots(card, person.Addresses,
		func(a api.Address) string { return a.Type },
		addressFromRemote,
		addressSlots)

	if len(person.Organizations) > 0 {
		card.Company = person.Organizations[0].Name
		card.JobTitle = person.Organizations[0].Title
		card.Department = person.Organizations[0].Department
	}

	fillSlots(card, person.URLs,
		func(u api.URL) string { return u.Type },
		func(u api.URL) (string, bool) { return nonEmpty(u.Value) },
		urlSlots)

	if len(person.Birthdays) > 0 && person.Birthdays[0].Date != nil {
		card.Birthday = FormatDate(*person.Birthdays[0].Date)
	}
	for _, e := range person.Events {
		if e.Type == eventAnniversary && e.Date != nil {
			card.Anniversary = FormatDate(*e.Date)
			break
		}
	}

	for i, u := range person.UserDefined {
		if i >= len(customSlots) {
			break
		}
		*customSlots[i](card) = u.Value
	}

	fillSlots(card, person.IMClients,
		func(c api.IMClient) string { return c.Protocol },
		func(c api.IMClient) (string, bool) { return nonEmpty(c.Username) },
		imSlots)

	if len(person.Biographies) > 0 {
		card.Notes = person.Biographies[0].Value
	}

	return item, nil
}

// ContactToRemote overwrites every managed field group of the person with the item's card.
// Empty slots are omitted. The display name is output-only and never sent; memberships are
// not managed here and are left untouched.
func ContactToRemote(item *models.Item, person *api.Person, opts Options) (*api.Person, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: local item is nil", ErrInvalidArgument)
	}
	if person == nil {
		return nil, fmt.Errorf("%w: remote person is nil", ErrInvalidArgument)
	}
	card := &item.Card

	person.Names = nil
	person.Nicknames = nil
	person.EmailAddresses = nil
	person.PhoneNumbers = nil
	person.Addresses = nil
	person.Organizations = nil
	person.URLs = nil
	person.Birthdays = nil
	person.Events = nil
	person.UserDefined = nil
	person.IMClients = nil
	person.Biographies = nil

	if card.FirstName != "" || card.LastName != "" {
		person.Names = []api.Name{{GivenName: card.FirstName, FamilyName: card.LastName}}
	}
	if card.NickName != "" {
		person.Nicknames = []api.Nickname{{Value: card.NickName}}
	}

	for _, field := range emailSlots {
		address := *field(card)
		if address == "" {
			continue
		}
		if opts.UseFakeEmailAddresses && IsFakeEmailAddress(address) {
			continue
		}
		person.EmailAddresses = append(person.EmailAddresses, api.EmailAddress{Value: address, Type: emailTypeOther})
	}

	person.PhoneNumbers = collectSlots(card, phoneSlots, isEmptyString,
		func(kind, v string) api.PhoneNumber { return api.PhoneNumber{Value: v, Type: kind} })
	person.Addresses = collectSlots(card, addressSlots,
		func(a models.PostalAddress) bool { return a.IsZero() },
		addressToRemote)

	if card.Company != "" || card.JobTitle != "" || card.Department != "" {
		person.Organizations = []api.Organization{{Name: card.Company, Title: card.JobTitle, Department: card.Department}}
	}

	person.URLs = collectSlots(card, urlSlots, isEmptyString,
		func(kind, v string) api.URL { return api.URL{Value: v, Type: kind} })

	// Некорректно закодированная дата просто не отправляется
	if d, err := ParseDate(card.Birthday); err == nil && !d.IsZero() {
		person.Birthdays = []api.Birthday{{Date: &d}}
	}
	if d, err := ParseDate(card.Anniversary); err == nil && !d.IsZero() {
		person.Events = []api.Event{{Date: &d, Type: eventAnniversary}}
	}

	for i, field := range customSlots {
		if v := *field(card); v != "" {
			person.UserDefined = append(person.UserDefined, api.UserDefined{
				Key:   fmt.Sprintf("%s%d", customKeyPrefix, i+1),
				Value: v,
			})
		}
	}

	person.IMClients = collectSlots(card, imSlots, isEmptyString,
		func(kind, v string) api.IMClient { return api.IMClient{Username: v, Protocol: kind} })

	if card.Notes != "" {
		person.Biographies = []api.Biography{{Value: card.Notes}}
	}

	return person, nil
}
