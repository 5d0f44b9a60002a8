package profile

import (
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type SkillPolicy string

const (
	SkillPolicyStrict  SkillPolicy = "strict"
	SkillPolicyLenient SkillPolicy = "lenient"
)

// ReconcileSkills matches requested ids against the skills that exist.
// Strict rejects any unknown id; lenient keeps only the known ones.
func ReconcileSkills(policy SkillPolicy, requested []uint, found []models.Skill) ([]models.Skill, error) {
	known := make(map[uint]models.Skill, len(found))
	for _, s := range found {
		known[s.ID] = s
	}

	seen := make(map[uint]bool, len(requested))
	out := make([]models.Skill, 0, len(requested))
	var unknown []uint

	for _, id := range requested {
		if seen[id] {
			continue
		}
		seen[id] = true

		s, ok := known[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		out = append(out, s)
	}

	if len(unknown) > 0 && policy != SkillPolicyLenient {
		return nil, httperr.Validation("skill_ids", "unknown_skill_ids", "One or more skill ids do not exist.")
	}
	return out, nil
}
