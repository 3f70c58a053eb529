package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlanReorder_Invariants_DenseUniqueOrders property-tests the reorder
// postcondition: after applying any planned move, every sibling group has
// unique, dense 0..n-1 orders and the moved task sits in exactly one group
// with the requested parent and section.
func TestPlanReorder_Invariants_DenseUniqueOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	sections := []*string{nil, strPtr("s1"), strPtr("s2")}
	parents := []*string{nil, strPtr("p1")}

	for trial := 0; trial < 300; trial++ {
		// Random snapshot: tasks scattered over (parent, section) groups,
		// each group densely ordered.
		var tasks []domain.Task
		counts := make(map[string]int)
		numTasks := rng.Intn(12) + 2
		for i := 0; i < numTasks; i++ {
			parentID := parents[rng.Intn(len(parents))]
			sectionID := sections[rng.Intn(len(sections))]
			key := groupKey(parentID, sectionID)
			tasks = append(tasks, positioned(fmt.Sprintf("t-%d", i), counts[key], parentID, sectionID))
			counts[key]++
		}

		moved := tasks[rng.Intn(len(tasks))]
		req := MoveRequest{
			MovedID:      moved.ID,
			ParentID:     parents[rng.Intn(len(parents))],
			SectionID:    sections[rng.Intn(len(sections))],
			DraggingDown: rng.Intn(2) == 1,
		}
		if rng.Intn(3) > 0 {
			other := tasks[rng.Intn(len(tasks))]
			req.OverID = strPtr(other.ID)
		}

		plan, err := PlanReorder(tasks, req)
		require.NoError(t, err, "trial %d", trial)

		after := applyPlan(tasks, plan)

		// Moved task adopted the destination group.
		movedAfter, ok := findTask(after, moved.ID)
		require.True(t, ok, "trial %d", trial)
		assert.True(t, samePtr(movedAfter.ParentID, req.ParentID), "trial %d: parent", trial)
		assert.True(t, samePtr(movedAfter.SectionID, req.SectionID), "trial %d: section", trial)

		// Every touched group is dense and unique.
		groups := make(map[string][]int)
		for _, task := range after {
			key := groupKey(task.ParentID, task.SectionID)
			groups[key] = append(groups[key], task.Order)
		}
		for key, orders := range groups {
			sort.Ints(orders)
			for i, order := range orders {
				assert.Equal(t, i, order,
					"trial %d group %s: orders must be dense 0..n-1, got %v", trial, key, orders)
			}
		}
	}
}

func groupKey(parentID, sectionID *string) string {
	key := "/"
	if parentID != nil {
		key = *parentID + "/"
	}
	if sectionID != nil {
		key += *sectionID
	}
	return key
}

func strPtr(s string) *string { return &s }
