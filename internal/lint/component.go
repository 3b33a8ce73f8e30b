package lint

import (
	"fmt"

	"github.com/thoreinstein/mplint/internal/manifest"
	"github.com/thoreinstein/mplint/internal/paths"
	"github.com/thoreinstein/mplint/internal/validator"
)

// componentRule describes how one component field is checked.
type componentRule struct {
	field    string // manifest field, e.g. "commands"
	singular string // item noun, e.g. "command"
	exists   string // success line prefix for existing item files

	// inline is false when inline declarations are skipped.
	inline bool
	// promptOnly requires inline items to carry a prompt; otherwise a
	// prompt or a file suffices.
	promptOnly bool
	// strictShape reports non-string, non-array values as errors.
	strictShape bool
}

var (
	commandsRule = componentRule{
		field:       "commands",
		singular:    "command",
		exists:      "Command file exists",
		inline:      true,
		strictShape: true,
	}
	agentsRule = componentRule{
		field:       "agents",
		singular:    "agent",
		exists:      "Agent file exists",
		inline:      true,
		promptOnly:  true,
		strictShape: true,
	}
	skillsRule = componentRule{
		field:    "skills",
		singular: "skill",
		exists:   "Skill file exists",
	}
)

// checkComponents validates one component declaration of the plugin rooted
// at dir. prefix labels every message.
func (v *Validator) checkComponents(list manifest.ComponentList, rule componentRule, dir, prefix string, result *validator.Result) {
	switch list.Kind {
	case manifest.ComponentAbsent:
		return
	case manifest.ComponentDir:
		if !paths.HasRelativePrefix(list.Dir) {
			result.AddErrorf(rule.field, "%s %s path must start with './'", prefix, rule.field)
		}
		if !paths.Exists(paths.Resolve(dir, list.Dir)) {
			result.AddErrorf(rule.field, "%s %s path does not exist: %s", prefix, rule.field, list.Dir)
		}
	case manifest.ComponentItems:
		for i, item := range list.Items {
			field := fmt.Sprintf("%s[%d]", rule.field, i)
			switch item.Kind {
			case manifest.ItemPath:
				v.checkItemPath(item.Path, i+1, rule, dir, field, prefix, result)
			case manifest.ItemInline:
				if rule.inline {
					checkInline(item, i+1, rule, field, prefix, result)
				}
			}
		}
	case manifest.ComponentInvalid:
		if rule.strictShape {
			result.AddErrorf(rule.field, "%s %s must be an array or string path", prefix, rule.field)
		}
	}
}

func (v *Validator) checkItemPath(ref string, n int, rule componentRule, dir, field, prefix string, result *validator.Result) {
	if !paths.HasRelativePrefix(ref) {
		result.AddErrorf(field, "%s %s #%d path must start with './'", prefix, rule.singular, n)
		return
	}

	full := paths.Resolve(dir, ref)
	v.logger.Debug("resolved component path", "kind", rule.singular, "ref", ref, "path", full)
	if !paths.Exists(full) {
		result.AddErrorf(field, "%s %s file does not exist: %s", prefix, rule.singular, ref)
		return
	}
	result.AddSuccessf(field, "%s: %s", rule.exists, ref)
}

func checkInline(item manifest.ComponentItem, n int, rule componentRule, field, prefix string, result *validator.Result) {
	if item.Name == "" {
		result.AddErrorf(field+".name", "%s %s #%d missing name", prefix, rule.singular, n)
	}
	if item.Description == "" {
		result.AddWarningf(field+".description", "%s %s %q missing description", prefix, rule.singular, item.Name)
	}

	switch {
	case rule.promptOnly && item.Prompt == "":
		result.AddErrorf(field+".prompt", "%s %s %q missing prompt", prefix, rule.singular, item.Name)
	case !rule.promptOnly && item.Prompt == "" && item.File == "":
		result.AddErrorf(field, "%s %s %q must have either prompt or file", prefix, rule.singular, item.Name)
	}
}
