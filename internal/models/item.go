package models

import "time"

// Item представляет запись локальной адресной книги: карточку контакта или список (группу).
// ResourceName и ETag являются метаданными синхронизации и связывают запись с удаленным каталогом.
type Item struct {
	UpdatedAt    time.Time `json:"updated_at"`
	ID           string    `json:"id"`            // ID локальный первичный ключ (UUID)
	ResourceName string    `json:"resource_name"` // ResourceName идентификатор удаленной записи
	ETag         string    `json:"etag"`          // ETag последний виденный токен удаленной записи
	List         List      `json:"list"`          // List заполняется только у списков
	Card         Card      `json:"card"`          // Card заполняется только у контактов
	IsMailList   bool      `json:"is_mail_list"`  // IsMailList отличает группу от контакта в одном хранилище
}

// Name returns a human readable label for logs and listings.
func (i *Item) Name() string {
	if i.IsMailList {
		return i.List.Name
	}
	if i.Card.DisplayName != "" {
		return i.Card.DisplayName
	}
	if full := joinNonEmpty(i.Card.FirstName, i.Card.LastName); full != "" {
		return full
	}
	if i.Card.PrimaryEmail != "" {
		return i.Card.PrimaryEmail
	}
	return "-"
}

// HasMember reports whether the list contains the item with the given local ID.
func (i *Item) HasMember(id string) bool {
	for _, m := range i.List.Members {
		if m == id {
			return true
		}
	}
	return false
}

// List is the local representation of a contact group.
type List struct {
	Name    string   `json:"name"`
	Members []string `json:"members,omitempty"` // Members локальные ID карточек
}

// PostalAddress is one fixed address slot of a card.
type PostalAddress struct {
	Street  string `json:"street,omitempty"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsZero reports whether every line of the address is empty.
func (a PostalAddress) IsZero() bool {
	return a == PostalAddress{}
}

// Card is the local representation of a contact. Every field is one fixed slot;
// an empty string means the slot is unset.
type Card struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	NickName    string `json:"nick_name,omitempty"`

	PrimaryEmail string `json:"primary_email,omitempty"`
	SecondEmail  string `json:"second_email,omitempty"`

	WorkPhone      string `json:"work_phone,omitempty"`
	HomePhone      string `json:"home_phone,omitempty"`
	FaxNumber      string `json:"fax_number,omitempty"`
	PagerNumber    string `json:"pager_number,omitempty"`
	CellularNumber string `json:"cellular_number,omitempty"`

	HomeAddress PostalAddress `json:"home_address"`
	WorkAddress PostalAddress `json:"work_address"`

	Company    string `json:"company,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`
	Department string `json:"department,omitempty"`

	WebPage1 string `json:"web_page1,omitempty"` // WebPage1 рабочий сайт
	WebPage2 string `json:"web_page2,omitempty"` // WebPage2 личный сайт

	Birthday    string `json:"birthday,omitempty"`    // Birthday в формате YYYY-MM-DD, "-" вместо неизвестной части
	Anniversary string `json:"anniversary,omitempty"` // Anniversary в том же формате

	Custom1 string `json:"custom1,omitempty"`
	Custom2 string `json:"custom2,omitempty"`
	Custom3 string `json:"custom3,omitempty"`
	Custom4 string `json:"custom4,omitempty"`

	GoogleTalk string `json:"google_talk,omitempty"`
	AIM        string `json:"aim,omitempty"`
	Yahoo      string `json:"yahoo,omitempty"`
	Skype      string `json:"skype,omitempty"`
	QQ         string `json:"qq,omitempty"`
	MSN        string `json:"msn,omitempty"`
	ICQ        string `json:"icq,omitempty"`
	Jabber     string `json:"jabber,omitempty"`

	Notes string `json:"notes,omitempty"`
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
