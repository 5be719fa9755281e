package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

type teamRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.TeamMember
}

// TeamMembers lives in the shared content table under PK TEAM#<id>.
type TeamMembers struct {
	table dynstore.Table[teamRecord]
}

// List returns members sorted by their manual order. activeOnly drops
// inactive members for the public site.
func (t *TeamMembers) List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error) {
	builder := t.table.Scan().FilterBeginsWith("PK", pkTeam)
	if activeOnly {
		builder = builder.FilterEqual("active", true)
	}
	records, err := builder.Exec(ctx)
	if err != nil {
		return nil, err
	}
	members := unwrap(records, func(r teamRecord) models.TeamMember { return r.TeamMember })
	sort.Slice(members, func(i, j int) bool { return members[i].Order < members[j].Order })
	return members, nil
}

func (t *TeamMembers) Get(ctx context.Context, id string) (*models.TeamMember, error) {
	rec, err := t.table.Get(ctx, pkTeam+id, skMeta)
	if err != nil {
		return nil, err
	}
	return &rec.TeamMember, nil
}

func (t *TeamMembers) Create(ctx context.Context, member models.TeamMember) (*models.TeamMember, error) {
	member.ID = uuid.NewString()
	if err := t.put(ctx, member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (t *TeamMembers) Update(ctx context.Context, member models.TeamMember) error {
	return t.put(ctx, member)
}

func (t *TeamMembers) Delete(ctx context.Context, id string) error {
	if _, err := t.Get(ctx, id); err != nil {
		return err
	}
	return t.table.Delete(ctx, pkTeam+id, skMeta)
}

// Reorder rewrites order for the full id list, one sequential write per
// member. Not atomic: an interruption midway leaves a partially renumbered
// list.
func (t *TeamMembers) Reorder(ctx context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		member, err := t.Get(ctx, id)
		if err != nil {
			return err
		}
		member.Order = i
		if err := t.put(ctx, *member); err != nil {
			return err
		}
	}
	return nil
}

func (t *TeamMembers) put(ctx context.Context, member models.TeamMember) error {
	return t.table.Put(ctx, teamRecord{
		PK:         pkTeam + member.ID,
		SK:         skMeta,
		TeamMember: member,
	})
}
