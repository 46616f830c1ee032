package naming

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// ErrUnknownCategory is returned when a category has no registered rule.
var ErrUnknownCategory = errors.New("unknown category")

// Slot names used in structural patterns.
const (
	SlotAction        = "Action"
	SlotHighContext   = "HighContext"
	SlotLowContext    = "LowContext"
	SlotEvent         = "Event"
	SlotPrefix        = "Prefix"
	SlotDomain        = "Domain"
	SlotEntity        = "Entity"
	SlotComponentType = "ComponentType"
	SlotTypePurpose   = "TypePurpose"
	SlotPurpose       = "Purpose"
	SlotBehavior      = "Behavior"
	SlotCondition     = "Condition"
)

// Slot is one semantic segment of a structural pattern.
type Slot struct {
	Name     string // Slot name, e.g. "HighContext"
	Literal  string // Fixed lowercase token this slot must equal, e.g. "handle"
	Optional bool   // Slot may be absent
}

// String returns the literal for fixed slots and the name otherwise.
func (s Slot) String() string {
	if s.Literal != "" {
		return s.Literal
	}
	if s.Optional {
		return s.Name + "?"
	}
	return s.Name
}

func literal(word string) Slot { return Slot{Name: word, Literal: word} }
func slot(name string) Slot    { return Slot{Name: name} }
func optional(name string) Slot {
	return Slot{Name: name, Optional: true}
}

// NamingRule describes how identifiers of one category must be spelled.
type NamingRule struct {
	Category core.Category
	Casing   core.Casing
	Pattern  []Slot // Structural pattern, empty when the category has none
	Enforced bool   // Pattern is checked, not just documented
	Notes    string
}

// RequiredSlots returns the number of non-optional slots in the pattern.
func (r NamingRule) RequiredSlots() int {
	n := 0
	for _, s := range r.Pattern {
		if !s.Optional {
			n++
		}
	}
	return n
}

// PatternString renders the pattern as "[Action HighContext LowContext]".
func (r NamingRule) PatternString() string {
	if len(r.Pattern) == 0 {
		return ""
	}
	parts := make([]string, len(r.Pattern))
	for i, s := range r.Pattern {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (r NamingRule) clone() NamingRule {
	r.Pattern = slices.Clone(r.Pattern)
	return r
}

var defaultRules = []NamingRule{
	{
		Category: core.CategoryVariable,
		Casing:   core.CasingCamel,
		Notes:    "must not be single-letter outside loop counters (i, j, k)",
	},
	{
		Category: core.CategoryBooleanVariable,
		Casing:   core.CasingCamel,
		Pattern:  []Slot{slot(SlotPrefix)},
		Notes:    "prefix is one of is, has, can, should, will, was, are",
	},
	{
		Category: core.CategoryFunction,
		Casing:   core.CasingCamel,
		Pattern:  []Slot{slot(SlotAction), slot(SlotHighContext), slot(SlotLowContext)},
		Enforced: true,
		Notes:    "Action is a common verb",
	},
	{
		Category: core.CategoryEventHandler,
		Casing:   core.CasingCamel,
		Pattern:  []Slot{literal("handle"), slot(SlotHighContext), slot(SlotLowContext), slot(SlotEvent)},
		Enforced: true,
		Notes:    "literal handle, last word is an event",
	},
	{
		Category: core.CategoryHook,
		Casing:   core.CasingCamel,
		Pattern:  []Slot{literal("use"), slot(SlotHighContext), slot(SlotLowContext)},
		Enforced: true,
		Notes:    "literal use",
	},
	{
		Category: core.CategoryComponent,
		Casing:   core.CasingPascal,
		Pattern:  []Slot{slot(SlotDomain), slot(SlotEntity), optional(SlotComponentType)},
		Notes:    "optional suffix such as Card, Modal, Form, List",
	},
	{
		Category: core.CategoryTypeOrInterface,
		Casing:   core.CasingPascal,
		Pattern:  []Slot{slot(SlotDomain), slot(SlotEntity), optional(SlotTypePurpose)},
		Notes:    "optional suffix such as Props, Request, Response, Config, Result",
	},
	{
		Category: core.CategoryConstant,
		Casing:   core.CasingScreamingSnake,
		Pattern:  []Slot{slot(strings.ToUpper(SlotDomain)), slot(strings.ToUpper(SlotEntity)), slot(strings.ToUpper(SlotPurpose))},
		Notes:    "underscore-delimited",
	},
	{
		Category: core.CategoryEnum,
		Casing:   core.CasingPascal,
		Notes:    "members are PascalCase too",
	},
	{
		Category: core.CategoryEnumMember,
		Casing:   core.CasingPascal,
	},
	{
		Category: core.CategoryModuleFile,
		Casing:   core.CasingKebab,
		Notes:    "suffixes: .types.ts, .constants.ts, -service.ts",
	},
	{
		Category: core.CategoryTestFile,
		Casing:   core.CasingKebab,
	},
	{
		Category: core.CategoryTestCase,
		Casing:   core.CasingFreeText,
		Pattern:  []Slot{literal("should"), slot(SlotBehavior), literal("when"), slot(SlotCondition)},
		Enforced: true,
		Notes:    "should <behavior> when <condition>",
	},
	{
		Category: core.CategoryMockObject,
		Casing:   core.CasingCamel,
		Pattern:  []Slot{literal("mock"), slot(SlotHighContext)},
		Enforced: true,
	},
	{
		Category: core.CategoryHelperFunction,
		Casing:   core.CasingCamel,
		Pattern:  []Slot{slot(SlotAction), slot(SlotHighContext), slot(SlotLowContext)},
		Enforced: true,
		Notes:    "Action also accepts test verbs (render, setup, build, mock)",
	},
}

var (
	defaultAbbreviations = []string{"tmp", "btn", "usr", "prf", "cnt", "msg"}
	defaultNoiseWords    = []string{"data", "info", "obj", "stuff", "thing"}
	defaultPrefixes      = []string{"is", "has", "can", "should", "will", "was", "are"}
	defaultActionVerbs   = []string{
		"get", "set", "reset", "fetch", "create", "update", "delete", "validate",
		"calculate", "format", "parse", "handle", "process", "generate", "transform", "map",
	}
	helperActionVerbs = []string{"render", "setup", "build", "make", "mock", "seed", "wait", "expect", "assert"}
	defaultEventWords = []string{
		"click", "change", "submit", "close", "open", "blur", "focus", "select", "toggle",
		"input", "key", "down", "up", "press", "scroll", "drag", "drop", "hover", "enter",
		"leave", "move", "load", "error", "reset", "cancel", "confirm", "save", "delete",
		"upload", "download", "resize",
	}
	defaultExpansions = map[string]string{
		"tmp": "temporary",
		"btn": "button",
		"usr": "user",
		"prf": "profile",
		"cnt": "count",
		"msg": "message",
		"obj": "object",
		"err": "error",
		"val": "value",
		"idx": "index",
		"str": "string",
		"num": "number",
		"res": "response",
		"req": "request",
		"cfg": "config",
		"ctx": "context",
		"evt": "event",
	}
)

// Catalog is the read-only rule table. Build it with NewCatalog.
type Catalog struct {
	rules       map[core.Category]NamingRule
	forbidden   map[string]struct{}
	prefixes    []string
	verbs       map[string]struct{}
	helperVerbs map[string]struct{}
	events      map[string]struct{}
	expansions  map[string]string
}

type settings struct {
	forbidden []string
	allowed   []string
	verbs     []string
	events    []string
	enforce   []core.Category
}

// Option customises a catalog while it is being built.
type Option func(*settings)

// WithForbiddenTokens adds tokens to the forbidden set.
func WithForbiddenTokens(tokens ...string) Option {
	return func(s *settings) { s.forbidden = append(s.forbidden, tokens...) }
}

// WithAllowedTokens removes tokens from the forbidden set. Allowed tokens win
// over forbidden ones regardless of option order.
func WithAllowedTokens(tokens ...string) Option {
	return func(s *settings) { s.allowed = append(s.allowed, tokens...) }
}

// WithActionVerbs adds verbs accepted in Action slots.
func WithActionVerbs(verbs ...string) Option {
	return func(s *settings) { s.verbs = append(s.verbs, verbs...) }
}

// WithEventWords adds words accepted in the Event slot.
func WithEventWords(words ...string) Option {
	return func(s *settings) { s.events = append(s.events, words...) }
}

// WithEnforcedStructure turns on structural checks for the given categories.
func WithEnforcedStructure(categories ...core.Category) Option {
	return func(s *settings) { s.enforce = append(s.enforce, categories...) }
}

// FromConfig applies the naming section of a project config. A nil config is
// a no-op.
func FromConfig(cfg *core.NamingConfig) Option {
	return func(s *settings) {
		if cfg == nil {
			return
		}
		WithForbiddenTokens(cfg.ForbiddenTokens...)(s)
		WithAllowedTokens(cfg.AllowedTokens...)(s)
		WithActionVerbs(cfg.ActionVerbs...)(s)
		WithEventWords(cfg.EventWords...)(s)
		WithEnforcedStructure(cfg.EnforceStructure...)(s)
	}
}

// NewCatalog builds a catalog from the built-in rule table and the options.
func NewCatalog(opts ...Option) *Catalog {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	c := &Catalog{
		rules:       make(map[core.Category]NamingRule, len(defaultRules)),
		forbidden:   wordSet(defaultAbbreviations, defaultNoiseWords, s.forbidden),
		prefixes:    slices.Clone(defaultPrefixes),
		verbs:       wordSet(defaultActionVerbs, s.verbs),
		helperVerbs: wordSet(defaultActionVerbs, helperActionVerbs, s.verbs),
		events:      wordSet(defaultEventWords, s.events),
		expansions:  maps.Clone(defaultExpansions),
	}
	for _, tok := range s.allowed {
		delete(c.forbidden, normalizeWord(tok))
	}

	for _, r := range defaultRules {
		r = r.clone()
		if slices.Contains(s.enforce, r.Category) && len(r.Pattern) > 0 {
			r.Enforced = true
		}
		c.rules[r.Category] = r
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog { return NewCatalog() })

// Default returns the shared catalog built with no options.
func Default() *Catalog {
	return defaultCatalog()
}

// Rule returns the rule for a category.
func (c *Catalog) Rule(category core.Category) (NamingRule, error) {
	r, ok := c.rules[category]
	if !ok {
		return NamingRule{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
	return r.clone(), nil
}

// Rules returns every rule in category order.
func (c *Catalog) Rules() []NamingRule {
	out := make([]NamingRule, 0, len(c.rules))
	for _, cat := range core.Categories() {
		if r, ok := c.rules[cat]; ok {
			out = append(out, r.clone())
		}
	}
	return out
}

// ForbiddenTokens returns the abbreviations and noise words that are rejected
// in every category.
func (c *Catalog) ForbiddenTokens() map[string]struct{} {
	return maps.Clone(c.forbidden)
}

// IsForbidden reports whether token is in the forbidden set, ignoring case.
func (c *Catalog) IsForbidden(token string) bool {
	_, ok := c.forbidden[normalizeWord(token)]
	return ok
}

// BooleanPrefixes returns the accepted boolean prefixes in order.
func (c *Catalog) BooleanPrefixes() []string {
	return slices.Clone(c.prefixes)
}

// ActionVerbs returns the verbs accepted in the Action slot for a category.
func (c *Catalog) ActionVerbs(category core.Category) map[string]struct{} {
	if category == core.CategoryHelperFunction {
		return maps.Clone(c.helperVerbs)
	}
	return maps.Clone(c.verbs)
}

// EventWords returns the words accepted as the last event-handler slot.
func (c *Catalog) EventWords() map[string]struct{} {
	return maps.Clone(c.events)
}

// Expansion returns the full word for an abbreviation.
func (c *Catalog) Expansion(token string) (string, bool) {
	w, ok := c.expansions[normalizeWord(token)]
	return w, ok
}

func (c *Catalog) isPrefix(token string) bool {
	return slices.Contains(c.prefixes, token)
}

func (c *Catalog) isVerb(category core.Category, token string) bool {
	set := c.verbs
	if category == core.CategoryHelperFunction {
		set = c.helperVerbs
	}
	_, ok := set[token]
	return ok
}

func (c *Catalog) isEvent(token string) bool {
	_, ok := c.events[token]
	return ok
}

func wordSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			if w = normalizeWord(w); w != "" {
				set[w] = struct{}{}
			}
		}
	}
	return set
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
