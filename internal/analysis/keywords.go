package analysis

import "strings"

// keywordGroup is a set of lower-case fragments matched by substring containment.
type keywordGroup []string

func (g keywordGroup) in(lowerText string) bool {
	for _, k := range g {
		if strings.Contains(lowerText, k) {
			return true
		}
	}
	return false
}

var (
	apiKeywords      = keywordGroup{"api"}
	frontendKeywords = keywordGroup{"react", "css"}
	dataKeywords     = keywordGroup{"data", "model"}

	userKeywords        = keywordGroup{"users", "clients", "customers"}
	performanceKeywords = keywordGroup{"fast", "efficient", "optimized", "performance"}
	securityKeywords    = keywordGroup{"secure", "auth", "protection"}

	testingKeywords    = keywordGroup{"test", "testing", "unit", "ci/cd"}
	deploymentKeywords = keywordGroup{"deploy", "hosted", "aws", "cloud", "live"}
	metricKeywords     = keywordGroup{"metric", "kpi", "result", "improved by"}

	leadKeywords      = keywordGroup{"lead", "led", "managed"}
	architectKeywords = keywordGroup{"architect", "designed"}
	supportKeywords   = keywordGroup{"support", "maintained"}

	impactKeywords      = keywordGroup{"%", "improved", "increased", "reduced", "saved"}
	methodologyKeywords = keywordGroup{"agile", "scrum", "kanban", "ci/cd", "testing"}
)
