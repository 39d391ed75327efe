// Package hierarchy resolves manager references over a snapshot of employee
// records into a forest of reporting trees.
package hierarchy

import (
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/crimson-sun/orgchart/internal/model"
	"github.com/crimson-sun/orgchart/internal/title"
)

// Build produces the forest for the given working set. Every record appears
// in exactly one node. A record is a root when its manager id is empty or
// not present in the snapshot. Manager cycles contained inside the snapshot
// are broken by demoting the most senior record of the cycle to a root.
//
// Duplicate user ids keep the later record (last write wins) and log a
// warning; the earlier record's reports are reattributed, not recovered.
func Build(records []model.EmployeeRecord) model.Forest {
	index := make(map[string]model.EmployeeRecord, len(records))
	order := make([]string, 0, len(records)) // first-seen uid order, for determinism
	for _, rec := range records {
		if _, dup := index[rec.UserID]; dup {
			slog.Warn("duplicate user id in snapshot, keeping later record",
				"user_id", rec.UserID, "name", rec.Name)
		} else {
			order = append(order, rec.UserID)
		}
		index[rec.UserID] = rec
	}

	// Group direct reports by manager id.
	reports := make(map[string][]string)
	for _, uid := range order {
		rec := index[uid]
		if rec.ManagerUserID == "" {
			continue
		}
		reports[rec.ManagerUserID] = append(reports[rec.ManagerUserID], uid)
	}

	b := &builder{
		index:   index,
		reports: reports,
		nodes:   make(map[string]*model.Node, len(index)),
		visited: make(map[string]bool, len(index)),
		coll:    newCollator(),
	}

	var forest model.Forest
	for _, uid := range order {
		rec := index[uid]
		if rec.ManagerUserID == "" {
			forest = append(forest, b.grow(uid))
			continue
		}
		if _, ok := index[rec.ManagerUserID]; !ok {
			// Manager outside the snapshot: treated as no manager.
			forest = append(forest, b.grow(uid))
		}
	}

	// Anything still unvisited sits on a manager cycle entirely inside the
	// snapshot. Demote the most senior remaining record to a root and expand;
	// repeat until the forest covers the whole working set.
	for {
		uid, ok := b.bestUnvisited(order)
		if !ok {
			break
		}
		rec := index[uid]
		slog.Warn("manager cycle detected, promoting record to root",
			"user_id", uid, "name", rec.Name, "manager_uid", rec.ManagerUserID)
		forest = append(forest, b.grow(uid))
	}

	b.sortForest(forest)
	return forest
}

type builder struct {
	index   map[string]model.EmployeeRecord
	reports map[string][]string
	nodes   map[string]*model.Node
	visited map[string]bool
	coll    *collate.Collator
}

// grow expands uid into a tree with an explicit worklist; no call-stack
// recursion. The visited set doubles as the cycle guard: a report that was
// already placed (an ancestor on a cycle, or a duplicate attachment point)
// is skipped rather than expanded again.
func (b *builder) grow(uid string) *model.Node {
	root := &model.Node{Record: b.index[uid]}
	b.nodes[uid] = root
	b.visited[uid] = true

	stack := []string{uid}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := b.nodes[cur]
		for _, child := range b.reports[cur] {
			if b.visited[child] {
				continue
			}
			n := &model.Node{Record: b.index[child]}
			b.nodes[child] = n
			b.visited[child] = true
			parent.Children = append(parent.Children, n)
			stack = append(stack, child)
		}
	}
	return root
}

// bestUnvisited returns the unplaced record that sorts first by the sibling
// ordering (rank, collated name, uid).
func (b *builder) bestUnvisited(order []string) (string, bool) {
	best := ""
	for _, uid := range order {
		if b.visited[uid] {
			continue
		}
		if best == "" || b.less(b.index[uid], b.index[best]) {
			best = uid
		}
	}
	return best, best != ""
}

// sortForest orders the root list and every children list by ascending rank,
// then name. Runs after construction so each sibling list is sorted once.
func (b *builder) sortForest(forest model.Forest) {
	b.sortSiblings(forest)
	stack := append([]*model.Node(nil), forest...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b.sortSiblings(n.Children)
		stack = append(stack, n.Children...)
	}
}

func (b *builder) sortSiblings(siblings []*model.Node) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return b.less(siblings[i].Record, siblings[j].Record)
	})
}

func (b *builder) less(x, y model.EmployeeRecord) bool {
	rx, ry := title.Rank(x.JobTitle), title.Rank(y.JobTitle)
	if rx != ry {
		return rx < ry
	}
	if c := b.coll.CompareString(x.Name, y.Name); c != 0 {
		return c < 0
	}
	return x.UserID < y.UserID
}

func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}
