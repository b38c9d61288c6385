// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"strconv"
	"time"

	"github.com/strickvl/beemind/internal/models"
	"github.com/strickvl/beemind/internal/util"
)

// GoalBuilder provides a fluent API for creating test goals.
type GoalBuilder struct {
	goal models.Goal
}

func NewGoal(slug string) *GoalBuilder {
	return &GoalBuilder{
		goal: models.Goal{
			Slug:      slug,
			Title:     "Test Goal",
			CurVal:    1,
			GoalVal:   10,
			Rate:      1,
			LoseDate:  util.Ptr(time.Now().Add(48 * time.Hour).Unix()),
			UpdatedAt: util.Ptr(time.Now().Unix()),
		},
	}
}

func (b *GoalBuilder) WithTitle(title string) *GoalBuilder {
	b.goal.Title = title
	return b
}

func (b *GoalBuilder) WithValues(current, target float64) *GoalBuilder {
	b.goal.CurVal = current
	b.goal.GoalVal = target
	return b
}

func (b *GoalBuilder) WithLoseDate(ts int64) *GoalBuilder {
	b.goal.LoseDate = util.Ptr(ts)
	return b
}

func (b *GoalBuilder) WithoutLoseDate() *GoalBuilder {
	b.goal.LoseDate = nil
	return b
}

func (b *GoalBuilder) Lost() *GoalBuilder {
	b.goal.Lost = true
	return b
}

func (b *GoalBuilder) Won() *GoalBuilder {
	b.goal.Won = true
	return b
}

func (b *GoalBuilder) Frozen() *GoalBuilder {
	b.goal.Frozen = true
	return b
}

func (b *GoalBuilder) WithTags(tags ...string) *GoalBuilder {
	b.goal.Tags = tags
	return b
}

func (b *GoalBuilder) Build() models.Goal {
	return b.goal
}

// Goals builds a collection of n goals with generated slugs.
func Goals(n int) []models.Goal {
	out := make([]models.Goal, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewGoal("goal-"+strconv.Itoa(i)).Build())
	}
	return out
}
