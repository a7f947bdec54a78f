package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/gophbook/internal/server/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

const (
	contactPrefix = "people/c"
	groupPrefix   = "contactGroups/"
)

func newResourceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// ListContacts returns every contact of the user with memberships
func (s *Storage) ListContacts(ctx context.Context, userID string) ([]*api.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT resource_name, etag, data
		FROM contacts
		WHERE user_id = ?
		ORDER BY rowid
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	people := make([]*api.Person, 0)
	for rows.Next() {
		var resourceName, tag, data string
		if err := rows.Scan(&resourceName, &tag, &data); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		person, err := decodePerson(resourceName, tag, data)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	memberships, err := loadMemberships(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range people {
		p.Memberships = toMemberships(memberships[p.ResourceName])
	}

	return people, nil
}

// GetContact returns a single contact with memberships
func (s *Storage) GetContact(ctx context.Context, userID, resourceName string) (*api.Person, error) {
	return getContact(ctx, s.db, userID, resourceName)
}

// CreateContact stores a new contact under a fresh resource name
func (s *Storage) CreateContact(ctx context.Context, userID string, person *api.Person) (*api.Person, error) {
	groups := uniqueStrings(person.GroupResourceNames())
	if len(groups) == 0 {
		groups = []string{storage.GroupMyContacts}
	}

	data, err := encodePerson(person)
	if err != nil {
		return nil, err
	}

	resourceName := contactPrefix + newResourceID()
	var created *api.Person

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		if err := checkGroupsExist(ctx, tx, userID, groups); err != nil {
			return err
		}

		seq, tag := s.clock.Next()
		now := s.now()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO contacts (user_id, resource_name, data, etag, seq, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, userID, resourceName, data, tag, seq, now, now)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}

		if err := insertMemberships(ctx, tx, userID, resourceName, groups); err != nil {
			return err
		}

		created, err = getContact(ctx, tx, userID, resourceName)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateContact replaces the contact fields when the etag matches
func (s *Storage) UpdateContact(ctx context.Context, userID string, person *api.Person) (*api.Person, error) {
	data, err := encodePerson(person)
	if err != nil {
		return nil, err
	}

	var updated *api.Person

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		var current string
		err := tx.QueryRowContext(ctx, `
			SELECT etag FROM contacts WHERE user_id = ? AND resource_name = ?
		`, userID, person.ResourceName).Scan(&current)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrContactNotFound
			}
			return fmt.Errorf("failed to get contact etag: %w", err)
		}

		if person.ETag != current {
			return storage.ErrETagMismatch
		}

		if person.Memberships != nil {
			groups := uniqueStrings(person.GroupResourceNames())
			if err := checkGroupsExist(ctx, tx, userID, groups); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `
				DELETE FROM memberships WHERE user_id = ? AND contact_resource = ?
			`, userID, person.ResourceName)
			if err != nil {
				return fmt.Errorf("failed to clear memberships: %w", err)
			}
			if err := insertMemberships(ctx, tx, userID, person.ResourceName, groups); err != nil {
				return err
			}
		}

		seq, tag := s.clock.Next()
		_, err = tx.ExecContext(ctx, `
			UPDATE contacts SET data = ?, etag = ?, seq = ?, updated_at = ?
			WHERE user_id = ? AND resource_name = ?
		`, data, tag, seq, s.now(), userID, person.ResourceName)
		if err != nil {
			return fmt.Errorf("failed to update contact: %w", err)
		}

		updated, err = getContact(ctx, tx, userID, person.ResourceName)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteContact removes the contact; memberships go with it
func (s *Storage) DeleteContact(ctx context.Context, userID, resourceName string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM contacts WHERE user_id = ? AND resource_name = ?
	`, userID, resourceName)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrContactNotFound
	}

	return nil
}

// ListGroups returns every group of the user with member counts, system groups first
func (s *Storage) ListGroups(ctx context.Context, userID string) ([]*api.ContactGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.resource_name, g.etag, g.name, g.group_type, COUNT(m.contact_resource)
		FROM contact_groups g
		LEFT JOIN memberships m
			ON m.user_id = g.user_id AND m.group_resource = g.resource_name
		WHERE g.user_id = ?
		GROUP BY g.resource_name, g.etag, g.name, g.group_type
		ORDER BY g.group_type = ?, g.name
	`, userID, api.GroupTypeUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	groups := make([]*api.ContactGroup, 0)
	for rows.Next() {
		g := &api.ContactGroup{}
		if err := rows.Scan(&g.ResourceName, &g.ETag, &g.Name, &g.GroupType, &g.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// CreateGroup stores a new user group
func (s *Storage) CreateGroup(ctx context.Context, userID string, group *api.ContactGroup) (*api.ContactGroup, error) {
	seq, tag := s.clock.Next()
	created := &api.ContactGroup{
		ResourceName: groupPrefix + newResourceID(),
		ETag:         tag,
		Name:         group.Name,
		GroupType:    api.GroupTypeUser,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_groups (user_id, resource_name, name, group_type, etag, seq)
		VALUES (?, ?, ?, ?, ?, ?)
	`, userID, created.ResourceName, created.Name, created.GroupType, created.ETag, seq)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrGroupNameTaken
		}
		return nil, fmt.Errorf("failed to insert group: %w", err)
	}

	return created, nil
}

// UpdateGroup renames a user group when the etag matches
func (s *Storage) UpdateGroup(ctx context.Context, userID string, group *api.ContactGroup) (*api.ContactGroup, error) {
	var updated *api.ContactGroup

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := getGroup(ctx, tx, userID, group.ResourceName)
		if err != nil {
			return err
		}

		if current.IsSystem() {
			return storage.ErrSystemGroup
		}
		if group.ETag != current.ETag {
			return storage.ErrETagMismatch
		}

		seq, tag := s.clock.Next()
		_, err = tx.ExecContext(ctx, `
			UPDATE contact_groups SET name = ?, etag = ?, seq = ?
			WHERE user_id = ? AND resource_name = ?
		`, group.Name, tag, seq, userID, group.ResourceName)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrGroupNameTaken
			}
			return fmt.Errorf("failed to update group: %w", err)
		}

		current.Name = group.Name
		current.ETag = tag
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteGroup removes a user group and its memberships
func (s *Storage) DeleteGroup(ctx context.Context, userID, resourceName string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := getGroup(ctx, tx, userID, resourceName)
		if err != nil {
			return err
		}
		if current.IsSystem() {
			return storage.ErrSystemGroup
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM contact_groups WHERE user_id = ? AND resource_name = ?
		`, userID, resourceName)
		if err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		return nil
	})
}

func getGroup(ctx context.Context, q querier, userID, resourceName string) (*api.ContactGroup, error) {
	g := &api.ContactGroup{}
	err := q.QueryRowContext(ctx, `
		SELECT g.resource_name, g.etag, g.name, g.group_type,
			(SELECT COUNT(*) FROM memberships m WHERE m.user_id = g.user_id AND m.group_resource = g.resource_name)
		FROM contact_groups g
		WHERE g.user_id = ? AND g.resource_name = ?
	`, userID, resourceName).Scan(&g.ResourceName, &g.ETag, &g.Name, &g.GroupType, &g.MemberCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return g, nil
}

func getContact(ctx context.Context, q querier, userID, resourceName string) (*api.Person, error) {
	var tag, data string
	err := q.QueryRowContext(ctx, `
		SELECT etag, data FROM contacts WHERE user_id = ? AND resource_name = ?
	`, userID, resourceName).Scan(&tag, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	person, err := decodePerson(resourceName, tag, data)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT group_resource FROM memberships
		WHERE user_id = ? AND contact_resource = ?
		ORDER BY position
	`, userID, resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}

	person.Memberships = toMemberships(groups)
	return person, nil
}

// loadMemberships возвращает группы каждого контакта пользователя
func loadMemberships(ctx context.Context, q querier, userID string) (map[string][]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT contact_resource, group_resource FROM memberships
		WHERE user_id = ?
		ORDER BY contact_resource, position
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string][]string)
	for rows.Next() {
		var contact, group string
		if err := rows.Scan(&contact, &group); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		result[contact] = append(result[contact], group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}

	return result, nil
}

func checkGroupsExist(ctx context.Context, q querier, userID string, groups []string) error {
	for _, g := range groups {
		var exists int
		err := q.QueryRowContext(ctx, `
			SELECT 1 FROM contact_groups WHERE user_id = ? AND resource_name = ?
		`, userID, g).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %s", storage.ErrGroupNotFound, g)
			}
			return fmt.Errorf("failed to check group: %w", err)
		}
	}
	return nil
}

func insertMemberships(ctx context.Context, q querier, userID, contact string, groups []string) error {
	for i, g := range groups {
		_, err := q.ExecContext(ctx, `
			INSERT INTO memberships (user_id, contact_resource, group_resource, position)
			VALUES (?, ?, ?, ?)
		`, userID, contact, g, i)
		if err != nil {
			return fmt.Errorf("failed to insert membership: %w", err)
		}
	}
	return nil
}

// encodePerson сериализует поля контакта без идентификаторов, членства и вычисляемых имен
func encodePerson(person *api.Person) (string, error) {
	stored := *person
	stored.ResourceName = ""
	stored.ETag = ""
	stored.Memberships = nil
	if len(person.Names) > 0 {
		stored.Names = make([]api.Name, len(person.Names))
		for i, n := range person.Names {
			stored.Names[i] = api.Name{GivenName: n.GivenName, FamilyName: n.FamilyName}
		}
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("failed to marshal contact: %w", err)
	}
	return string(data), nil
}

func decodePerson(resourceName, tag, data string) (*api.Person, error) {
	person := &api.Person{}
	if err := json.Unmarshal([]byte(data), person); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact %s: %w", resourceName, err)
	}
	person.ResourceName = resourceName
	person.ETag = tag
	for i := range person.Names {
		person.Names[i].DisplayName = strings.TrimSpace(person.Names[i].GivenName + " " + person.Names[i].FamilyName)
	}
	return person, nil
}

func toMemberships(groups []string) []api.Membership {
	if len(groups) == 0 {
		return nil
	}
	memberships := make([]api.Membership, 0, len(groups))
	for _, g := range groups {
		memberships = append(memberships, api.Membership{
			ContactGroupMembership: &api.ContactGroupMembership{ContactGroupResourceName: g},
		})
	}
	return memberships
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
