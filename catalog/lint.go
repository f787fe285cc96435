package catalog

import (
	"errors"
	"fmt"
	"slices"

	vacuum "github.com/daveshanley/vacuum/model"
	"github.com/daveshanley/vacuum/motor"
	"github.com/daveshanley/vacuum/rulesets"
)

// unusedComponentRule always fires on a document without paths.
const unusedComponentRule = "oas3-unused-component"

func lint(doc []byte, ignore []string) error {
	recommended := rulesets.BuildDefaultRuleSets().GenerateOpenAPIRecommendedRuleSet()

	execution := motor.ApplyRulesToRuleSet(&motor.RuleSetExecution{
		RuleSet: recommended,
		Spec:    doc,
	})

	resultSet := vacuum.NewRuleResultSet(execution.Results)
	resultSet.SortResultsByLineNumber()

	schemas := resultSet.GetRuleResultsForCategory("schemas")
	if schemas == nil {
		return nil
	}

	var errs []error
	for _, ruleResult := range schemas.RuleResults {
		for _, violation := range ruleResult.Results {
			id := ruleID(violation)
			if slices.Contains(ignore, id) {
				continue
			}

			line, col := 0, 0
			if violation.StartNode != nil {
				line, col = violation.StartNode.Line, violation.StartNode.Column
			}
			errs = append(errs, fmt.Errorf("[%d:%d] %s: %s", line, col, id, violation.Message))
		}
	}

	return errors.Join(errs...)
}

// ruleID reports the id of the rule that produced a result. The recommended
// ruleset sets it on the attached rule and leaves RuleId empty.
func ruleID(result *vacuum.RuleFunctionResult) string {
	if result.Rule != nil && result.Rule.Id != "" {
		return result.Rule.Id
	}

	return result.RuleId
}
