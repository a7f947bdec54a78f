package sync

import (
	"context"
	"fmt"
	"slices"

	"github.com/iudanet/gophbook/internal/models"
)

// MembershipIndex maps a group resource name to the resource names of its member
// contacts in insertion order. It lives for one run only.
type MembershipIndex struct {
	members  map[string][]string // группа -> контакты
	groupsOf map[string][]string // контакт -> группы
}

// NewMembershipIndex returns an empty index
func NewMembershipIndex() *MembershipIndex {
	return &MembershipIndex{
		members:  make(map[string][]string),
		groupsOf: make(map[string][]string),
	}
}

// Fold records the groups of a contact, replacing whatever was folded for it before.
func (m *MembershipIndex) Fold(contact string, groups []string) {
	m.Remove(contact)

	var folded []string
	for _, group := range groups {
		if group == "" || slices.Contains(folded, group) {
			continue
		}
		folded = append(folded, group)
		m.members[group] = append(m.members[group], contact)
	}
	if len(folded) > 0 {
		m.groupsOf[contact] = folded
	}
}

// Remove forgets a contact.
func (m *MembershipIndex) Remove(contact string) {
	for _, group := range m.groupsOf[contact] {
		members := slices.DeleteFunc(m.members[group], func(c string) bool { return c == contact })
		if len(members) == 0 {
			delete(m.members, group)
			continue
		}
		m.members[group] = members
	}
	delete(m.groupsOf, contact)
}

// Members returns the member contacts of the group; ok is false if the group has no entry.
func (m *MembershipIndex) Members(group string) (contacts []string, ok bool) {
	contacts, ok = m.members[group]
	return contacts, ok
}

// materializeMembers rewrites the member list of every local group that has a remote
// counterpart from the index. Returns the number of lists whose members changed.
func (s *service) materializeMembers(ctx context.Context, groups resourceSet, index *MembershipIndex) (int, error) {
	items, err := s.book.AllItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list local items: %w", err)
	}

	cards := make(map[string]*models.Item, len(items))
	for _, item := range items {
		if !item.IsMailList {
			cards[item.ResourceName] = item
		}
	}

	changed := 0
	for _, list := range items {
		if !list.IsMailList || !groups.has(list.ResourceName) {
			continue
		}

		var members []string
		if contacts, ok := index.Members(list.ResourceName); ok {
			for _, contact := range contacts {
				if card, ok := cards[contact]; ok {
					members = append(members, card.ID)
				}
			}
		}

		if slices.Equal(list.List.Members, members) {
			continue
		}
		list.List.Members = members
		if err := s.book.ModifyItem(ctx, list, true); err != nil {
			return changed, fmt.Errorf("failed to store members of %s: %w", list.ResourceName, err)
		}
		s.trace("Materialized group members", "resource", list.ResourceName, "members", len(members))
		changed++
	}

	return changed, nil
}

// repairChangeLog drops change log entries whose item no longer resolves.
func (s *service) repairChangeLog(ctx context.Context) (int, error) {
	entries, err := s.book.ChangeLog(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read change log: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		_, found, err := s.lookup(ctx, entry.ResourceName)
		if err != nil {
			return removed, err
		}
		if found {
			continue
		}
		if err := s.book.RemoveFromChangeLog(ctx, entry.ResourceName); err != nil {
			return removed, err
		}
		s.trace("Dropped orphaned change log entry", "resource", entry.ResourceName, "kind", entry.Kind)
		removed++
	}

	return removed, nil
}
