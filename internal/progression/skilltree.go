package progression

import (
	"sort"

	"verdant-server/internal/domain"
	"verdant-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NodeType - тип узла дерева навыков.
type NodeType uint8

const (
	NodePassive NodeType = iota
	NodeCareBonus
	NodeGrowthBonus
	NodeYieldBonus
	NodeAutomationUnlock
)

func (t NodeType) String() string {
	switch t {
	case NodeCareBonus:
		return "CARE_BONUS"
	case NodeGrowthBonus:
		return "GROWTH_BONUS"
	case NodeYieldBonus:
		return "YIELD_BONUS"
	case NodeAutomationUnlock:
		return "AUTOMATION_UNLOCK"
	default:
		return "PASSIVE"
	}
}

// SkillNode - статическое описание узла.
type SkillNode struct {
	ID     string   `yaml:"id"`
	Branch string   `yaml:"branch"`
	Type   NodeType `yaml:"-"`

	RequiredXP float64  `yaml:"requiredXp"`
	Prereqs    []string `yaml:"prereqs"`

	// Для NodeAutomationUnlock: задача, чью автоматизацию узел открывает
	Task domain.CareTask `yaml:"-"`

	// Величина бенефита (множитель добавки) для бонусных узлов
	Benefit float64 `yaml:"benefit"`
}

// NodeState - узел + накопленный прогресс.
type NodeState struct {
	SkillNode
	Unlocked   bool    `json:"unlocked"` // латч one-way
	Experience float64 `json:"experience"`
}

// Причины отказа AddExperience
const (
	ReasonUnknownNode = "UNKNOWN_NODE"
)

// AddResult - что произошло при начислении опыта.
type AddResult struct {
	OK     bool
	Reason string

	Applied float64 // фактически начисленный опыт (после множителя источника)

	Unlocked bool // узел разблокирован ИМЕННО этим вызовом

	BranchVibrancy float64
	LevelChanged   bool
	PrevLevel      domain.TreeGrowthLevel
	NewLevel       domain.TreeGrowthLevel
}

// Tree - дерево навыков с ветками и гейтами пререквизитов.
type Tree struct {
	nodes  map[string]*NodeState
	order  []string // детерминированный порядок обхода
	level  domain.TreeGrowthLevel
	source map[domain.ExperienceSource]float64
}

// NewTree строит дерево из описаний узлов.
func NewTree(nodes []SkillNode) *Tree {
	t := &Tree{
		nodes: make(map[string]*NodeState, len(nodes)),
		source: map[domain.ExperienceSource]float64{
			domain.SourceManualCare:    1.0,
			domain.SourceAutomatedCare: 0.4,
			domain.SourceHarvest:       1.5,
			domain.SourceDiscovery:     2.0,
		},
	}
	for _, n := range nodes {
		t.nodes[n.ID] = &NodeState{SkillNode: n}
		t.order = append(t.order, n.ID)
	}
	return t
}

// Node возвращает узел по ID (nil, если нет).
func (t *Tree) Node(id string) *NodeState {
	return t.nodes[id]
}

// CanUnlock - выполнены ли условия разблокировки узла:
// опыт >= требуемого И все пререквизиты разблокированы.
func (t *Tree) CanUnlock(id string) bool {
	n, ok := t.nodes[id]
	if !ok || n.Unlocked {
		return false
	}
	if n.Experience < n.RequiredXP {
		return false
	}
	for _, pre := range n.Prereqs {
		if p, ok := t.nodes[pre]; !ok || !p.Unlocked {
			return false
		}
	}
	return true
}

// AddExperience начисляет опыт узлу с множителем источника и, если условия
// выполнены, проводит one-way разблокировку с пересчетом vibrancy ветки
// и уровня всего дерева.
func (t *Tree) AddExperience(id string, amount float64, source domain.ExperienceSource) AddResult {
	n, ok := t.nodes[id]
	if !ok {
		return AddResult{Reason: ReasonUnknownNode}
	}

	mult, ok := t.source[source]
	if !ok {
		mult = 1.0
	}
	applied := amount * mult
	if applied < 0 {
		applied = 0
	}
	n.Experience += applied

	result := AddResult{OK: true, Applied: applied, PrevLevel: t.level, NewLevel: t.level}

	if t.CanUnlock(id) {
		n.Unlocked = true
		result.Unlocked = true
		result.BranchVibrancy = t.Vibrancy(n.Branch)

		prev := t.level
		t.level = domain.GrowthLevelForVibrancy(t.TreeVibrancy())
		result.PrevLevel = prev
		result.NewLevel = t.level
		result.LevelChanged = t.level != prev

		logger.Log.WithFields(logrus.Fields{
			"component": "skill_tree",
			"node":      id,
			"branch":    n.Branch,
			"vibrancy":  result.BranchVibrancy,
		}).Info("Skill node unlocked.")
	}

	return result
}

// Vibrancy - доля разблокированных узлов ветки.
func (t *Tree) Vibrancy(branch string) float64 {
	total, unlocked := 0, 0
	for _, n := range t.nodes {
		if n.Branch != branch {
			continue
		}
		total++
		if n.Unlocked {
			unlocked++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(unlocked) / float64(total)
}

// TreeVibrancy - доля разблокированных узлов всего дерева.
func (t *Tree) TreeVibrancy() float64 {
	if len(t.nodes) == 0 {
		return 0
	}
	unlocked := 0
	for _, n := range t.nodes {
		if n.Unlocked {
			unlocked++
		}
	}
	return float64(unlocked) / float64(len(t.nodes))
}

// GrowthLevel - текущий уровень расцвета дерева.
func (t *Tree) GrowthLevel() domain.TreeGrowthLevel {
	return t.level
}

// Branches возвращает отсортированный список имен веток.
func (t *Tree) Branches() []string {
	seen := make(map[string]bool)
	for _, n := range t.nodes {
		seen[n.Branch] = true
	}
	out := make([]string, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// UnlockedBenefit суммирует бенефиты разблокированных узлов данного типа.
func (t *Tree) UnlockedBenefit(nodeType NodeType) float64 {
	total := 0.0
	for _, id := range t.order {
		n := t.nodes[id]
		if n.Unlocked && n.Type == nodeType {
			total += n.Benefit
		}
	}
	return total
}

// Nodes возвращает снимок узлов в детерминированном порядке.
func (t *Tree) Nodes() []NodeState {
	out := make([]NodeState, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.nodes[id])
	}
	return out
}

// DefaultTree - встроенное дерево: три ветки, гейты пререквизитов,
// узлы автоматизации на концах цепочек.
func DefaultTree() *Tree {
	return NewTree([]SkillNode{
		// Ветка cultivation: базовый уход
		{ID: "cult_watering_1", Branch: "cultivation", Type: NodeCareBonus, RequiredXP: 50, Benefit: 0.05},
		{ID: "cult_watering_2", Branch: "cultivation", Type: NodeCareBonus, RequiredXP: 150, Prereqs: []string{"cult_watering_1"}, Benefit: 0.10},
		{ID: "cult_feeding_1", Branch: "cultivation", Type: NodeCareBonus, RequiredXP: 60, Benefit: 0.05},
		{ID: "cult_canopy_1", Branch: "cultivation", Type: NodeYieldBonus, RequiredXP: 120, Prereqs: []string{"cult_watering_1"}, Benefit: 0.08},

		// Ветка automation: навык замещает бремя
		{ID: "auto_irrigation", Branch: "automation", Type: NodeAutomationUnlock, RequiredXP: 200, Prereqs: []string{"cult_watering_2"}, Task: domain.TaskWatering},
		{ID: "auto_dosing", Branch: "automation", Type: NodeAutomationUnlock, RequiredXP: 250, Prereqs: []string{"cult_feeding_1"}, Task: domain.TaskFeeding},
		{ID: "auto_sensors", Branch: "automation", Type: NodeAutomationUnlock, RequiredXP: 150, Task: domain.TaskMonitoring},

		// Ветка botany: генетика и урожай
		{ID: "bot_phenohunt", Branch: "botany", Type: NodePassive, RequiredXP: 100},
		{ID: "bot_growth_1", Branch: "botany", Type: NodeGrowthBonus, RequiredXP: 180, Prereqs: []string{"bot_phenohunt"}, Benefit: 0.10},
		{ID: "bot_harvest_1", Branch: "botany", Type: NodeYieldBonus, RequiredXP: 220, Prereqs: []string{"bot_phenohunt"}, Benefit: 0.12},
	})
}
