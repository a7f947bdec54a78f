package api

// Group types reported by the directory.
const (
	GroupTypeUser   = "USER_CONTACT_GROUP"
	GroupTypeSystem = "SYSTEM_CONTACT_GROUP"
)

// Person представляет контакт в удаленном каталоге.
// Повторяющиеся группы полей отсутствуют в JSON, если они пустые.
type Person struct {
	ResourceName   string         `json:"resourceName,omitempty"` // ResourceName стабильный идентификатор, например "people/c123"
	ETag           string         `json:"etag,omitempty"`         // ETag токен конкурентного доступа, меняется при каждом изменении
	Names          []Name         `json:"names,omitempty"`
	Nicknames      []Nickname     `json:"nicknames,omitempty"`
	EmailAddresses []EmailAddress `json:"emailAddresses,omitempty"`
	PhoneNumbers   []PhoneNumber  `json:"phoneNumbers,omitempty"`
	Addresses      []Address      `json:"addresses,omitempty"`
	Organizations  []Organization `json:"organizations,omitempty"`
	URLs           []URL          `json:"urls,omitempty"`
	Birthdays      []Birthday     `json:"birthdays,omitempty" validate:"omitempty,dive"`
	Events         []Event        `json:"events,omitempty" validate:"omitempty,dive"`
	UserDefined    []UserDefined  `json:"userDefined,omitempty"`
	IMClients      []IMClient     `json:"imClients,omitempty"`
	Biographies    []Biography    `json:"biographies,omitempty"`
	Memberships    []Membership   `json:"memberships,omitempty"` // Memberships только для чтения при создании; при обновлении nil сохраняет текущие
}

// Name holds the structured name of a person. DisplayName is output-only.
type Name struct {
	DisplayName string `json:"displayName,omitempty"`
	GivenName   string `json:"givenName,omitempty"`
	FamilyName  string `json:"familyName,omitempty"`
}

type Nickname struct {
	Value string `json:"value,omitempty"`
}

type EmailAddress struct {
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
}

type PhoneNumber struct {
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"` // work, home, workFax, homeFax, pager, mobile, ...
}

type Address struct {
	Type            string `json:"type,omitempty"` // home, work, ...
	StreetAddress   string `json:"streetAddress,omitempty"`
	ExtendedAddress string `json:"extendedAddress,omitempty"`
	City            string `json:"city,omitempty"`
	Region          string `json:"region,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	Country         string `json:"country,omitempty"`
}

type Organization struct {
	Name       string `json:"name,omitempty"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
}

type URL struct {
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Date is a calendar date with independently optional components.
// A zero component means "not set".
type Date struct {
	Year  int `json:"year,omitempty" validate:"omitempty,min=1,max=9999"`
	Month int `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Day   int `json:"day,omitempty" validate:"omitempty,min=1,max=31"`
}

// IsZero reports whether no component is set.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

type Birthday struct {
	Date *Date `json:"date,omitempty"`
}

// Event is a dated occurrence such as an anniversary.
type Event struct {
	Date *Date  `json:"date,omitempty"`
	Type string `json:"type,omitempty"`
}

type UserDefined struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

type IMClient struct {
	Username string `json:"username,omitempty"`
	Protocol string `json:"protocol,omitempty"`
}

type Biography struct {
	Value string `json:"value,omitempty"`
}

// Membership ссылается на группу, в которую входит контакт
type Membership struct {
	ContactGroupMembership *ContactGroupMembership `json:"contactGroupMembership,omitempty"`
}

type ContactGroupMembership struct {
	ContactGroupResourceName string `json:"contactGroupResourceName"`
}

// GroupResourceNames returns the resource names of the groups the person belongs to,
// in the order the directory reported them.
func (p *Person) GroupResourceNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Memberships))
	for _, m := range p.Memberships {
		if m.ContactGroupMembership == nil || m.ContactGroupMembership.ContactGroupResourceName == "" {
			continue
		}
		names = append(names, m.ContactGroupMembership.ContactGroupResourceName)
	}
	return names
}

// DisplayName returns the output-only display name, or "-" when there is none.
func (p *Person) DisplayName() string {
	if p == nil || len(p.Names) == 0 || p.Names[0].DisplayName == "" {
		return "-"
	}
	return p.Names[0].DisplayName
}

// ContactGroup представляет группу контактов в удаленном каталоге.
// Состав группы хранится в контактах (Person.Memberships), а не в самой группе.
type ContactGroup struct {
	ResourceName string `json:"resourceName,omitempty"` // ResourceName например "contactGroups/abc"
	ETag         string `json:"etag,omitempty"`         // ETag пустой у системных групп
	Name         string `json:"name,omitempty" validate:"required,max=255"`
	GroupType    string `json:"groupType,omitempty"`   // GroupType USER_CONTACT_GROUP или SYSTEM_CONTACT_GROUP
	MemberCount  int    `json:"memberCount,omitempty"` // MemberCount только для чтения
}

// IsSystem reports whether the group is managed by the directory itself.
func (g *ContactGroup) IsSystem() bool {
	return g != nil && g.GroupType == GroupTypeSystem
}

// ListConnectionsResponse ответ на GET /v1/people
type ListConnectionsResponse struct {
	Connections []*Person `json:"connections"`
	TotalPeople int       `json:"totalPeople"`
}

// ListContactGroupsResponse ответ на GET /v1/contactGroups
type ListContactGroupsResponse struct {
	ContactGroups []*ContactGroup `json:"contactGroups"`
	TotalItems    int             `json:"totalItems"`
}
