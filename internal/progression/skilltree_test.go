package progression

import (
	"math"
	"testing"

	"verdant-server/internal/domain"
)

func smallTree() *Tree {
	return NewTree([]SkillNode{
		{ID: "root", Branch: "a", RequiredXP: 10},
		{ID: "mid", Branch: "a", RequiredXP: 20, Prereqs: []string{"root"}},
		{ID: "leaf", Branch: "a", RequiredXP: 30, Prereqs: []string{"mid"}},
		{ID: "other", Branch: "b", RequiredXP: 10},
	})
}

func TestNodeUnlocksOnlyWithXPAndPrereqs(t *testing.T) {
	tree := smallTree()

	// Enough XP but prereq locked: no unlock
	res := tree.AddExperience("mid", 100, domain.SourceManualCare)
	if !res.OK || res.Unlocked {
		t.Errorf("mid must not unlock while root is locked (OK=%v unlocked=%v)", res.OK, res.Unlocked)
	}

	// Prereq unlocked but not enough XP: no unlock
	res = tree.AddExperience("root", 5, domain.SourceManualCare)
	if res.Unlocked {
		t.Error("root must not unlock below required XP")
	}

	// Both conditions met: unlock fires
	res = tree.AddExperience("root", 5, domain.SourceManualCare)
	if !res.Unlocked {
		t.Error("root should unlock at exactly required XP")
	}

	// mid already has banked XP; one more grain triggers the gate recheck
	res = tree.AddExperience("mid", 1, domain.SourceManualCare)
	if !res.Unlocked {
		t.Error("mid should unlock once its prerequisite is unlocked")
	}
}

func TestUnlockIsOneWay(t *testing.T) {
	tree := smallTree()
	tree.AddExperience("root", 10, domain.SourceManualCare)
	if !tree.Node("root").Unlocked {
		t.Fatal("setup: root should be unlocked")
	}

	// Further experience never re-fires the unlock
	res := tree.AddExperience("root", 100, domain.SourceManualCare)
	if res.Unlocked {
		t.Error("already-unlocked node must not report unlock again")
	}
	if !tree.Node("root").Unlocked {
		t.Error("unlock flag must never revert")
	}
}

func TestSourceMultipliers(t *testing.T) {
	tree := smallTree()

	res := tree.AddExperience("root", 10, domain.SourceDiscovery)
	if res.Applied != 20 {
		t.Errorf("discovery XP should be doubled: applied = %v, want 20", res.Applied)
	}

	res = tree.AddExperience("other", 10, domain.SourceAutomatedCare)
	if res.Applied != 4 {
		t.Errorf("automated-care XP should be discounted: applied = %v, want 4", res.Applied)
	}
}

func TestBranchVibrancyEqualsUnlockedRatio(t *testing.T) {
	tree := smallTree()

	if v := tree.Vibrancy("a"); v != 0 {
		t.Errorf("fresh branch vibrancy = %v, want 0", v)
	}

	tree.AddExperience("root", 10, domain.SourceManualCare)
	if v := tree.Vibrancy("a"); math.Abs(v-1.0/3.0) > 1e-9 {
		t.Errorf("vibrancy after 1/3 unlocked = %v, want 1/3", v)
	}

	tree.AddExperience("mid", 20, domain.SourceManualCare)
	if v := tree.Vibrancy("a"); math.Abs(v-2.0/3.0) > 1e-9 {
		t.Errorf("vibrancy after 2/3 unlocked = %v, want 2/3", v)
	}

	// Branch b untouched
	if v := tree.Vibrancy("b"); v != 0 {
		t.Errorf("branch b vibrancy = %v, want 0", v)
	}
}

func TestTreeGrowthLevelProgression(t *testing.T) {
	tree := smallTree()
	if tree.GrowthLevel() != domain.TreeSeed {
		t.Errorf("fresh tree level = %s, want SEED", tree.GrowthLevel())
	}

	// Unlock everything: 4/4 = 1.0 => FULLY_FLOWERED
	tree.AddExperience("root", 10, domain.SourceManualCare)
	tree.AddExperience("other", 10, domain.SourceManualCare)
	tree.AddExperience("mid", 20, domain.SourceManualCare)
	res := tree.AddExperience("leaf", 30, domain.SourceManualCare)

	if !res.Unlocked {
		t.Fatal("leaf should unlock")
	}
	if tree.GrowthLevel() != domain.TreeFullyFlowered {
		t.Errorf("fully unlocked tree level = %s, want FULLY_FLOWERED", tree.GrowthLevel())
	}
	if !res.LevelChanged {
		t.Error("final unlock should report a level change")
	}
}

func TestUnknownNodeRejected(t *testing.T) {
	tree := smallTree()
	res := tree.AddExperience("ghost", 10, domain.SourceManualCare)
	if res.OK || res.Reason != ReasonUnknownNode {
		t.Errorf("unknown node: OK=%v reason=%s", res.OK, res.Reason)
	}
}

func TestDefaultTreeIsWellFormed(t *testing.T) {
	tree := DefaultTree()

	// Every prerequisite must reference an existing node
	for _, n := range tree.Nodes() {
		for _, pre := range n.Prereqs {
			if tree.Node(pre) == nil {
				t.Errorf("node %s references unknown prerequisite %s", n.ID, pre)
			}
		}
	}
	// Automation nodes must map to an automatable task
	for _, n := range tree.Nodes() {
		if n.Type == NodeAutomationUnlock && n.Task == domain.TaskUnknown {
			t.Errorf("automation node %s has no task", n.ID)
		}
	}
}
