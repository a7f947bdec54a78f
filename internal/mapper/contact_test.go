package mapper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/pkg/api"
)

func fullPerson() *api.Person {
	return &api.Person{
		ResourceName: "people/c1",
		ETag:         "7",
		Names:        []api.Name{{GivenName: "Ada", FamilyName: "Lovelace", DisplayName: "Ada Lovelace"}},
		Nicknames:    []api.Nickname{{Value: "Countess"}},
		EmailAddresses: []api.EmailAddress{
			{Value: "ada@example.com", Type: "home"},
			{Value: "ada@work.example.com", Type: "work"},
			{Value: "third@example.com"},
		},
		PhoneNumbers: []api.PhoneNumber{
			{Value: "+1 111", Type: "work"},
			{Value: "+1 222", Type: "home"},
			{Value: "+1 333", Type: "homeFax"},
			{Value: "+1 444", Type: "pager"},
			{Value: "+1 555", Type: "mobile"},
		},
		Addresses: []api.Address{
			{Type: "home", StreetAddress: "1 Main St", City: "London", PostalCode: "N1", Country: "UK"},
			{Type: "work", StreetAddress: "2 Engine Rd", ExtendedAddress: "Floor 3", City: "London", Region: "Greater London"},
		},
		Organizations: []api.Organization{{Name: "Analytical Engines", Title: "Programmer", Department: "R&D"}},
		URLs: []api.URL{
			{Value: "https://work.example.com", Type: "work"},
			{Value: "https://blog.example.com", Type: "blog"},
		},
		Birthdays: []api.Birthday{{Date: &api.Date{Year: 1815, Month: 12, Day: 10}}},
		Events: []api.Event{
			{Type: "other", Date: &api.Date{Year: 1840, Month: 1, Day: 1}},
			{Type: "anniversary", Date: &api.Date{Month: 7, Day: 8}},
		},
		UserDefined: []api.UserDefined{{Key: "a", Value: "one"}, {Key: "b", Value: "two"}},
		IMClients: []api.IMClient{
			{Username: "ada.skype", Protocol: "skype"},
			{Username: "ada@jabber.org", Protocol: "jabber"},
		},
		Biographies: []api.Biography{{Value: "First programmer."}},
		Memberships: []api.Membership{
			{ContactGroupMembership: &api.ContactGroupMembership{ContactGroupResourceName: "contactGroups/9"}},
		},
	}
}

func TestContactToLocal_AllSlots(t *testing.T) {
	item := &models.Item{ID: "card-1"}

	got, err := ContactToLocal(item, fullPerson(), Options{})
	require.NoError(t, err)
	assert.Same(t, item, got)

	want := models.Card{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		DisplayName:    "Ada Lovelace",
		NickName:       "Countess",
		PrimaryEmail:   "ada@example.com",
		SecondEmail:    "ada@work.example.com",
		WorkPhone:      "+1 111",
		HomePhone:      "+1 222",
		FaxNumber:      "+1 333",
		PagerNumber:    "+1 444",
		CellularNumber: "+1 555",
		HomeAddress:    models.PostalAddress{Street: "1 Main St", City: "London", ZipCode: "N1", Country: "UK"},
		WorkAddress:    models.PostalAddress{Street: "2 Engine Rd", Street2: "Floor 3", City: "London", State: "Greater London"},
		Company:        "Analytical Engines",
		JobTitle:       "Programmer",
		Department:     "R&D",
		WebPage1:       "https://work.example.com",
		WebPage2:       "https://blog.example.com",
		Birthday:       "1815-12-10",
		Anniversary:    "--07-08",
		Custom1:        "one",
		Custom2:        "two",
		Skype:          "ada.skype",
		Jabber:         "ada@jabber.org",
		Notes:          "First programmer.",
	}
	assert.Equal(t, want, got.Card)
	assert.Empty(t, got.ResourceName)
	assert.Empty(t, got.ETag)
}

func TestContactToLocal_FirstOccurrenceWins(t *testing.T) {
	person := &api.Person{
		PhoneNumbers: []api.PhoneNumber{
			{Value: "first", Type: "mobile"},
			{Value: "second", Type: "mobile"},
			{Value: "fax-a", Type: "workFax"},
			{Value: "fax-b", Type: "homeFax"},
			{Value: "ignored", Type: "main"},
		},
		URLs: []api.URL{
			{Value: "https://a.example.com", Type: "homePage"},
			{Value: "https://b.example.com", Type: "profile"},
		},
		IMClients: []api.IMClient{
			{Username: "one", Protocol: "icq"},
			{Username: "two", Protocol: "icq"},
			{Username: "x", Protocol: "unknown"},
		},
	}

	item, err := ContactToLocal(&models.Item{}, person, Options{})
	require.NoError(t, err)
	assert.Equal(t, "first", item.Card.CellularNumber)
	assert.Equal(t, "fax-a", item.Card.FaxNumber)
	assert.Empty(t, item.Card.WorkPhone)
	assert.Equal(t, "https://a.example.com", item.Card.WebPage2)
	assert.Empty(t, item.Card.WebPage1)
	assert.Equal(t, "one", item.Card.ICQ)
}

func TestContactToLocal_ClearsStaleSlots(t *testing.T) {
	item := &models.Item{Card: models.Card{
		FirstName: "Old",
		HomePhone: "123",
		Notes:     "stale",
		Custom4:   "stale",
		Birthday:  "2000-01-01",
	}}

	got, err := ContactToLocal(item, &api.Person{Names: []api.Name{{GivenName: "New"}}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, models.Card{FirstName: "New"}, got.Card)
}

func TestContactToLocal_Idempotent(t *testing.T) {
	person := fullPerson()

	first, err := ContactToLocal(&models.Item{}, person, Options{})
	require.NoError(t, err)
	snapshot := first.Card

	second, err := ContactToLocal(first, person, Options{})
	require.NoError(t, err)
	assert.Equal(t, snapshot, second.Card)
}

func TestContactToLocal_FakeEmail(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	opts := Options{UseFakeEmailAddresses: true, Now: func() time.Time { return now }}

	t.Run("generated when person has no address", func(t *testing.T) {
		item, err := ContactToLocal(&models.Item{}, &api.Person{}, opts)
		require.NoError(t, err)
		assert.True(t, IsFakeEmailAddress(item.Card.PrimaryEmail))
		assert.True(t, strings.HasPrefix(item.Card.PrimaryEmail, "1700000000123."))
		assert.Empty(t, item.Card.SecondEmail)
	})

	t.Run("reused on repeated application", func(t *testing.T) {
		item, err := ContactToLocal(&models.Item{}, &api.Person{}, opts)
		require.NoError(t, err)
		address := item.Card.PrimaryEmail

		item, err = ContactToLocal(item, &api.Person{Nicknames: []api.Nickname{{Value: "n"}}}, opts)
		require.NoError(t, err)
		assert.Equal(t, address, item.Card.PrimaryEmail)
	})

	t.Run("not generated when disabled", func(t *testing.T) {
		item, err := ContactToLocal(&models.Item{}, &api.Person{}, Options{})
		require.NoError(t, err)
		assert.Empty(t, item.Card.PrimaryEmail)
	})

	t.Run("real address replaces placeholder", func(t *testing.T) {
		item := &models.Item{Card: models.Card{PrimaryEmail: NewFakeEmailAddress(now)}}
		item, err := ContactToLocal(item, &api.Person{EmailAddresses: []api.EmailAddress{{Value: "real@example.com"}}}, opts)
		require.NoError(t, err)
		assert.Equal(t, "real@example.com", item.Card.PrimaryEmail)
	})
}

func TestContactToRemote_AllSlots(t *testing.T) {
	local, err := ContactToLocal(&models.Item{}, fullPerson(), Options{})
	require.NoError(t, err)

	person := &api.Person{ResourceName: "people/c1", ETag: "7", Memberships: fullPerson().Memberships}
	got, err := ContactToRemote(local, person, Options{})
	require.NoError(t, err)
	assert.Same(t, person, got)

	assert.Equal(t, "people/c1", got.ResourceName)
	assert.Equal(t, "7", got.ETag)
	assert.Equal(t, []api.Name{{GivenName: "Ada", FamilyName: "Lovelace"}}, got.Names, "display name is never sent")
	assert.Equal(t, []api.EmailAddress{
		{Value: "ada@example.com", Type: "other"},
		{Value: "ada@work.example.com", Type: "other"},
	}, got.EmailAddresses)
	assert.Equal(t, []api.PhoneNumber{
		{Value: "+1 111", Type: "work"},
		{Value: "+1 222", Type: "home"},
		{Value: "+1 333", Type: "workFax"},
		{Value: "+1 444", Type: "pager"},
		{Value: "+1 555", Type: "mobile"},
	}, got.PhoneNumbers)
	require.Len(t, got.Addresses, 2)
	assert.Equal(t, "home", got.Addresses[0].Type)
	assert.Equal(t, "Greater London", got.Addresses[1].Region)
	assert.Equal(t, []api.URL{
		{Value: "https://work.example.com", Type: "work"},
		{Value: "https://blog.example.com", Type: "other"},
	}, got.URLs)
	assert.Equal(t, []api.Birthday{{Date: &api.Date{Year: 1815, Month: 12, Day: 10}}}, got.Birthdays)
	assert.Equal(t, []api.Event{{Type: "anniversary", Date: &api.Date{Month: 7, Day: 8}}}, got.Events)
	assert.Equal(t, []api.UserDefined{{Key: "Custom1", Value: "one"}, {Key: "Custom2", Value: "two"}}, got.UserDefined)
	assert.Equal(t, []api.IMClient{
		{Username: "ada.skype", Protocol: "skype"},
		{Username: "ada@jabber.org", Protocol: "jabber"},
	}, got.IMClients)
	assert.Equal(t, []api.Biography{{Value: "First programmer."}}, got.Biographies)
	assert.Len(t, got.Memberships, 1, "memberships are left untouched")
}

func TestContactToRemote_EmptyCardClearsPerson(t *testing.T) {
	got, err := ContactToRemote(&models.Item{}, fullPerson(), Options{})
	require.NoError(t, err)

	assert.Nil(t, got.Names)
	assert.Nil(t, got.Nicknames)
	assert.Nil(t, got.EmailAddresses)
	assert.Nil(t, got.PhoneNumbers)
	assert.Nil(t, got.Addresses)
	assert.Nil(t, got.Organizations)
	assert.Nil(t, got.URLs)
	assert.Nil(t, got.Birthdays)
	assert.Nil(t, got.Events)
	assert.Nil(t, got.UserDefined)
	assert.Nil(t, got.IMClients)
	assert.Nil(t, got.Biographies)
}

func TestContactToRemote_InvalidDatesOmitted(t *testing.T) {
	item := &models.Item{Card: models.Card{FirstName: "A", Birthday: "someday", Anniversary: "1990-13-01"}}

	got, err := ContactToRemote(item, &api.Person{}, Options{})
	require.NoError(t, err)
	assert.Nil(t, got.Birthdays)
	assert.Nil(t, got.Events)
	assert.Len(t, got.Names, 1)
}

func TestContactToRemote_FakeEmail(t *testing.T) {
	fake := NewFakeEmailAddress(time.Now())
	item := &models.Item{Card: models.Card{PrimaryEmail: fake, SecondEmail: "real@example.com"}}

	got, err := ContactToRemote(item, &api.Person{}, Options{UseFakeEmailAddresses: true})
	require.NoError(t, err)
	assert.Equal(t, []api.EmailAddress{{Value: "real@example.com", Type: "other"}}, got.EmailAddresses)

	got, err = ContactToRemote(item, &api.Person{}, Options{})
	require.NoError(t, err)
	assert.Len(t, got.EmailAddresses, 2, "placeholders are only filtered when the option is on")
}

func TestContact_RoundTrip(t *testing.T) {
	card := models.Card{
		FirstName:      "Grace",
		LastName:       "Hopper",
		NickName:       "Amazing Grace",
		PrimaryEmail:   "grace@example.com",
		SecondEmail:    "g@navy.example.com",
		HomePhone:      "1",
		FaxNumber:      "2",
		CellularNumber: "3",
		WorkAddress:    models.PostalAddress{Street: "Pentagon", Country: "US"},
		Company:        "US Navy",
		WebPage2:       "https://grace.example.com",
		Birthday:       "1906-12-09",
		Anniversary:    "1930----",
		Custom1:        "c1",
		Custom2:        "c2",
		Custom3:        "c3",
		Custom4:        "c4",
		AIM:            "grace",
		Notes:          "COBOL",
	}

	remote, err := ContactToRemote(&models.Item{Card: card}, &api.Person{}, Options{})
	require.NoError(t, err)

	back, err := ContactToLocal(&models.Item{}, remote, Options{})
	require.NoError(t, err)
	assert.Equal(t, card, back.Card)
}

func TestContactMapping_NilArguments(t *testing.T) {
	_, err := ContactToLocal(nil, &api.Person{}, Options{})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ContactToLocal(&models.Item{}, nil, Options{})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ContactToRemote(nil, &api.Person{}, Options{})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ContactToRemote(&models.Item{}, nil, Options{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
