package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Structure heuristic bucket values. The four buckets are fixed; there is no
// partial credit within a bucket.
const (
	structureExperiencePoints = 35
	structureEducationPoints  = 25
	structureSkillsPoints     = 20
	structureProjectPoints    = 20
)

// Experience heuristic awards.
const (
	seniorityAlignedPoints  = 50
	seniorityMissingPoints  = 10
	yearsSatisfiedPoints    = 50
	yearsUnstatedPoints     = 10
	yearsNoRequirementAward = 50
)

// seniorityMarkers are the fixed seniority level indicators checked in both
// the job description and the résumé.
var seniorityMarkers = []string{"senior", "lead", "manager", "jr.", "sr.", "junior", "associate"}

var (
	jdYearsPattern     = regexp.MustCompile(`(\d+)\+?\s+years`)
	resumeYearsPattern = regexp.MustCompile(`(\d+)\s+years`)
)

// StructureScore rates the presence of expected résumé sections, 0–100.
// Checks are substring tests on the lowercased text: experience sections,
// education or degrees, a skills section, and projects or internships.
func StructureScore(resumeText string) int {
	t := strings.ToLower(resumeText)
	score := 0
	if strings.Contains(t, "experience") || strings.Contains(t, "work experience") {
		score += structureExperiencePoints
	}
	if strings.Contains(t, "education") || strings.Contains(t, "degree") {
		score += structureEducationPoints
	}
	if strings.Contains(t, "skills") {
		score += structureSkillsPoints
	}
	if strings.Contains(t, "project") || strings.Contains(t, "intern") {
		score += structureProjectPoints
	}
	return min(score, 100)
}

// ExperienceScore rates seniority and years-of-experience alignment between
// résumé and job description, 0–100.
//
// The seniority component contributes 50 when both texts carry a seniority
// marker, 10 when only the JD does, and 0 when the JD has none. The years
// component looks for an "N+ years" requirement in the JD: a résumé meeting
// it earns 50, a shorter tenure earns floor(50·Y/R), and a résumé with no
// years statement earns 10. A JD with no years requirement earns the neutral
// 50 regardless of the seniority outcome; that asymmetric 50/100 baseline
// for marker-free, requirement-free JDs is intentional and load-bearing.
func ExperienceScore(resumeText, jdText string) int {
	r := strings.ToLower(resumeText)
	j := strings.ToLower(jdText)
	score := 0

	if containsAny(j, seniorityMarkers) {
		if containsAny(r, seniorityMarkers) {
			score += seniorityAlignedPoints
		} else {
			score += seniorityMissingPoints
		}
	}

	if m := jdYearsPattern.FindStringSubmatch(j); m != nil {
		required, _ := strconv.Atoi(m[1])
		if got := resumeYearsPattern.FindStringSubmatch(r); got != nil {
			actual, _ := strconv.Atoi(got[1])
			if actual >= required {
				score += yearsSatisfiedPoints
			} else if required > 0 {
				score += yearsSatisfiedPoints * actual / required
			}
		} else {
			score += yearsUnstatedPoints
		}
	} else {
		score += yearsNoRequirementAward
	}

	return min(score, 100)
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
