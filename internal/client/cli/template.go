package cli

const usageTemplate = `
GophBook Client

Usage:
  gophbook [OPTIONS] COMMAND

Options:
  -server URL      Directory server URL (default: http://localhost:8080)
  -db PATH         Path to local address book (default: gophbook.db)
  -verbose         Log every synchronization decision
  -read-only       Never modify the directory during sync (overrides config)
  -fake-emails     Generate placeholder emails for contacts without one (overrides config)

Commands:
  register                     Register new user
  login                        Login to directory
  logout                       Logout
  status                       Show session, settings and pending changes
  sync                         Synchronize the address book with the directory
  list <contacts|groups>       List contacts or groups
  get <resource>               Show contact or group details
  members <group>              List members of a group
  add <contact|group>          Add a contact or a group
  edit <contact>               Edit a contact
  rename <group> <name>        Rename a group
  delete <resource>            Delete a contact or a group
  config [key [value]]         Show or change account settings
  changelog [clear]            Show or discard local changes not yet synchronized

Settings:
  include_system_groups        Synchronize system groups (My Contacts, Starred)
  read_only                    Refresh from the directory without modifying it
  fake_emails                  Generate placeholder emails for contacts without one

Examples:
  gophbook register
  gophbook login
  gophbook add contact
  gophbook add group Friends
  gophbook sync
  gophbook list contacts
  gophbook get people/c1a2b3
  gophbook config read_only true
  gophbook -server https://example.com login
`

const contactTemplate = `
=== Contact ===

Name:      {{ .Item.Name }}
Resource:  {{ .Item.ResourceName }}
{{- if .Item.ETag }}
ETag:      {{ .Item.ETag }}
{{- end }}
{{ range .Fields }}
{{ printf "%-14s" .Label }}{{ .Value }}
{{- end }}
{{- if .Groups }}

Groups:
{{- range .Groups }}
  - {{ . }}
{{- end }}
{{- end }}

`

const groupTemplate = `
=== Group ===

Name:      {{ .Item.Name }}
Resource:  {{ .Item.ResourceName }}
{{- if .Item.ETag }}
ETag:      {{ .Item.ETag }}
{{- end }}
Members:   {{ len .Item.List.Members }}

`

const contactsListTemplate = `
=== Contacts ===

{{- if eq (len .) 0 }}
No contacts found.

Use 'gophbook add contact' or 'gophbook sync' to get started.

{{ else }}
Found {{ len . }} contact(s):

{{- range . }}
- {{ .Name }}
   Resource: {{ .ResourceName }}
   {{- if .Card.PrimaryEmail }}
   Email:    {{ .Card.PrimaryEmail }}
   {{- end }}
   {{- if .Card.CellularNumber }}
   Mobile:   {{ .Card.CellularNumber }}
   {{- end }}
{{- end }}

{{ end -}}
`

const groupsListTemplate = `
=== Groups ===

{{- if eq (len .) 0 }}
No groups found.

{{ else }}
Found {{ len . }} group(s):

{{- range . }}
- {{ .Name }} ({{ len .List.Members }} member(s))
   Resource: {{ .ResourceName }}
{{- end }}

{{ end -}}
`

const membersListTemplate = `
=== Members of {{ .Group.Name }} ===

{{- if eq (len .Members) 0 }}
Group is empty.

{{ else }}
{{- range .Members }}
- {{ .Name }} ({{ .ResourceName }})
{{- end }}

{{ end -}}
`
