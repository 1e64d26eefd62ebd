package engine

import (
	"sort"

	"verdant-server/internal/domain"
	"verdant-server/pkg/api"
)

// BuildState создает полный снимок хозяйства для рассылки клиентам.
// Снимок общий: персональных полей зрения в симуляции нет.
func (s *SimulationService) BuildState() *api.ServerResponse {
	plants := s.Plants()
	sort.Slice(plants, func(i, j int) bool { return plants[i].ID < plants[j].ID })

	views := make([]api.PlantView, 0, len(plants))
	for _, p := range plants {
		views = append(views, toPlantView(p))
	}

	// Копия журнала, чтобы не было гонки с очисткой
	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)

	return &api.ServerResponse{
		Type:        "UPDATE",
		Tick:        s.tick,
		SimTime:     s.simTime,
		Plants:      views,
		Progression: s.buildProgressionView(),
		Logs:        logsCopy,
	}
}

// toPlantView конвертирует доменное растение в DTO.
func toPlantView(p *domain.PlantEntity) api.PlantView {
	view := api.PlantView{
		ID:     p.ID.String(),
		Name:   p.Name,
		Strain: p.StrainID,
	}

	if g := p.Growth; g != nil {
		view.Stage = g.Stage.String()
		view.StageProgress = g.StageProgress
		view.Overall = g.Overall
		view.AgeSeconds = g.AgeSeconds
	}
	if v := p.Vitals; v != nil {
		view.Health = v.Health
		view.Stress = v.Stress
		view.Water = v.Water
		view.Nutrient = v.Nutrient
	}

	view.Fitness = p.Fitness.Overall
	view.YieldPotential = p.YieldPotential
	view.QualityPotential = p.QualityPotential

	for _, st := range p.ActiveStressors() {
		view.Stressors = append(view.Stressors, api.StressorView{
			Source:    st.Source,
			Category:  st.Category.String(),
			Intensity: st.Intensity,
		})
	}

	if e := p.Environment; e != nil {
		view.Environment = &api.EnvironmentView{
			Temperature:    e.Temperature,
			Humidity:       e.Humidity,
			LightIntensity: e.LightIntensity,
			CO2:            e.CO2,
			Stability:      e.Stability(),
		}
	}

	return view
}

// buildProgressionView собирает мета-состояние прогрессии.
func (s *SimulationService) buildProgressionView() *api.ProgressionView {
	view := &api.ProgressionView{
		TreeLevel:    s.progress.Tree().GrowthLevel().String(),
		TreeVibrancy: s.progress.Tree().TreeVibrancy(),
	}

	for _, p := range s.progress.Burden().Snapshot() {
		view.Burdens = append(view.Burdens, api.BurdenView{
			Task:      p.Task.String(),
			Burden:    p.Burden,
			Desire:    p.Desire.String(),
			Available: p.Available,
			Unlocked:  p.Unlocked,
			Actions:   p.TotalActions,
		})
	}

	for _, sys := range s.progress.Engine().SystemsSnapshot() {
		view.Systems = append(view.Systems, api.SystemView{
			System:   sys.System.String(),
			Unlocked: sys.Unlocked,
			Active:   sys.Active,
		})
	}

	for _, n := range s.progress.Tree().Nodes() {
		view.Skills = append(view.Skills, api.SkillView{
			ID:         n.ID,
			Branch:     n.Branch,
			Unlocked:   n.Unlocked,
			Experience: n.Experience,
			RequiredXP: n.RequiredXP,
		})
	}

	return view
}
