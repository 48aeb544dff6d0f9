package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/c360studio/semschema/schema"
)

// JSON-LD keywords handled by the validator.
const (
	KeywordContext = "@context"
	KeywordType    = "@type"
	KeywordID      = "@id"
)

const (
	// ContextHost is the only accepted @context host.
	ContextHost = "schema.org"
	// DefaultContext is set when a document has no @context.
	DefaultContext = "https://" + ContextHost
	// DefaultType is set when a document has no @type.
	DefaultType = "Dataset"

	defaultCacheSize = 1024
)

// ErrNilSchema is returned by New without a schema document.
var ErrNilSchema = errors.New("validation schema is nil")

// ErrUnknownType is returned by New when the default type is not a class
// of the schema.
var ErrUnknownType = errors.New("unknown schema.org type")

// Validator validates JSON-LD against a schema document. It is safe for
// concurrent use; the document must not be modified afterwards.
type Validator struct {
	doc         *schema.Document
	cache       *lru.Cache[propKey, resolution]
	cacheSize   int
	defaultType string
	logger      *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. Every issue is also logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithCacheSize sets the number of memoized property lookups.
func WithCacheSize(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.cacheSize = n
		}
	}
}

// WithDefaultType sets the @type assumed when a document has none.
func WithDefaultType(class string) Option {
	return func(v *Validator) {
		if class != "" {
			v.defaultType = class
		}
	}
}

// New creates a validator for doc.
func New(doc *schema.Document, opts ...Option) (*Validator, error) {
	if doc == nil {
		return nil, ErrNilSchema
	}

	v := &Validator{
		doc:         doc,
		cacheSize:   defaultCacheSize,
		defaultType: DefaultType,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}

	if _, ok := doc.Class(v.defaultType); !ok {
		return nil, fmt.Errorf("%w: default type %q", ErrUnknownType, v.defaultType)
	}

	cache, err := lru.New[propKey, resolution](v.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create property cache: %w", err)
	}
	v.cache = cache
	return v, nil
}

// ValidateJSON decodes data and validates it. The top-level value must be
// a JSON object.
func (v *Validator) ValidateJSON(data []byte) (Result, error) {
	var ld map[string]any
	if err := json.Unmarshal(data, &ld); err != nil {
		return Result{}, fmt.Errorf("decode JSON-LD: %w", err)
	}
	if ld == nil {
		return Result{}, errors.New("decode JSON-LD: document is null")
	}
	return v.Validate(ld), nil
}

// Validate checks ld and returns a cleaned copy; ld itself is not modified.
func (v *Validator) Validate(ld map[string]any) Result {
	r := &run{v: v, valid: true}
	doc, _ := deepCopy(ld).(map[string]any)
	if doc == nil {
		doc = map[string]any{}
	}

	r.removeEmpty(doc, "$")
	if r.checkKeywords(doc) {
		r.validateObject(doc, "$")
		if !r.requiredPresent(doc, "$", true) {
			r.valid = false
		}
	}

	return Result{Valid: r.valid, Document: doc, Issues: r.issues}
}

// run carries the state of one Validate call.
type run struct {
	v      *Validator
	valid  bool
	issues []Issue
}

func (r *run) errorf(path, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.valid = false
	r.issues = append(r.issues, Issue{Severity: SeverityError, Path: path, Message: msg})
	r.v.logger.Debug("Invalid JSON-LD", slog.String("path", path), slog.String("reason", msg))
}

func (r *run) warnf(path, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.issues = append(r.issues, Issue{Severity: SeverityWarning, Path: path, Message: msg})
	r.v.logger.Debug("JSON-LD attribute ignored", slog.String("path", path), slog.String("reason", msg))
}

// removeEmpty drops null values, empty strings and empty arrays, recursing
// into objects and arrays.
func (r *run) removeEmpty(obj map[string]any, path string) {
	for _, key := range sortedKeys(obj) {
		child := path + "." + key
		switch val := obj[key].(type) {
		case nil:
			delete(obj, key)
			r.warnf(child, "empty value removed")
		case string:
			if val == "" {
				delete(obj, key)
				r.warnf(child, "empty value removed")
			}
		case map[string]any:
			r.removeEmpty(val, child)
		case []any:
			kept := val[:0]
			for i, elem := range val {
				switch e := elem.(type) {
				case nil:
					continue
				case string:
					if e == "" {
						continue
					}
				case map[string]any:
					r.removeEmpty(e, fmt.Sprintf("%s[%d]", child, i))
				}
				kept = append(kept, elem)
			}
			if len(kept) == 0 {
				delete(obj, key)
				r.warnf(child, "empty array removed")
			} else {
				obj[key] = kept
			}
		}
	}
}

// checkKeywords validates the top-level JSON-LD keywords and fills in the
// defaults. It returns false when @context or @type is unacceptable.
func (r *run) checkKeywords(doc map[string]any) bool {
	ok := true
	for _, key := range sortedKeys(doc) {
		if !strings.HasPrefix(key, "@") {
			continue
		}
		path := "$." + key
		switch key {
		case KeywordContext:
			if !validContext(doc[key]) {
				r.errorf(path, "context must be a %s URL, got %v", ContextHost, doc[key])
				ok = false
			}
		case KeywordType:
			name, isString := doc[key].(string)
			if !isString {
				r.errorf(path, "type must be a string, got %v", doc[key])
				ok = false
			} else if _, known := r.v.doc.Class(name); !known {
				r.errorf(path, "unknown type %q", name)
				ok = false
			}
		case KeywordID:
		default:
			delete(doc, key)
			r.warnf(path, "unsupported JSON-LD keyword removed")
		}
	}

	if _, has := doc[KeywordContext]; !has {
		doc[KeywordContext] = DefaultContext
		r.warnf("$."+KeywordContext, "missing, set to %s", DefaultContext)
	}
	if _, has := doc[KeywordType]; !has {
		doc[KeywordType] = r.v.defaultType
		r.warnf("$."+KeywordType, "missing, set to %s", r.v.defaultType)
	}
	return ok
}

func validContext(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Hostname(), ContextHost)
}

// validateObject removes properties of obj that its class does not define
// and values whose type does not match. Objects without a known @type are
// left alone.
func (r *run) validateObject(obj map[string]any, path string) {
	class, _ := obj[KeywordType].(string)
	if _, known := r.v.doc.Class(class); !known {
		return
	}

	for _, key := range sortedKeys(obj) {
		if strings.HasPrefix(key, "@") {
			continue
		}
		child := path + "." + key

		spec, found := r.v.resolve(class, key)
		if !found {
			delete(obj, key)
			if hint := r.v.suggest(class, key); hint != "" {
				r.warnf(child, "%s has no property %q (did you mean %q?), removed", class, key, hint)
			} else {
				r.warnf(child, "%s has no property %q, removed", class, key)
			}
			continue
		}

		if arr, isArray := obj[key].([]any); isArray {
			kept := arr[:0]
			for i, elem := range arr {
				elemPath := fmt.Sprintf("%s[%d]", child, i)
				if r.matches(spec, elem, elemPath) {
					kept = append(kept, elem)
					continue
				}
				r.warnf(elemPath, "value does not match %s, removed", strings.Join(spec.Types, " | "))
			}
			if len(kept) == 0 {
				delete(obj, key)
			} else {
				obj[key] = kept
			}
			continue
		}

		if !r.matches(spec, obj[key], child) {
			delete(obj, key)
			r.warnf(child, "value does not match %s, removed", strings.Join(spec.Types, " | "))
		}
	}
}

// matches reports whether value satisfies one of the property's types.
// Objects must carry a known @type that is, or descends from, one of the
// allowed classes; they are then validated recursively.
func (r *run) matches(spec schema.PropertySpec, value any, path string) bool {
	if obj, isObject := value.(map[string]any); isObject {
		class, _ := obj[KeywordType].(string)
		if _, known := r.v.doc.Class(class); !known {
			return false
		}
		if !slices.ContainsFunc(spec.Types, func(t string) bool { return r.v.isA(class, t) }) {
			return false
		}
		r.validateObject(obj, path)
		return true
	}

	for _, t := range spec.Types {
		if match, _ := matchesPrimitive(t, value); match {
			return true
		}
	}
	return false
}

// requiredPresent checks the required properties of obj's class. Nested
// typed objects missing theirs are removed. At the top level a missing
// property is an error; below it the caller drops the object.
func (r *run) requiredPresent(obj map[string]any, path string, top bool) bool {
	ok := true
	class, _ := obj[KeywordType].(string)
	if entry, known := r.v.doc.Class(class); known {
		for _, prop := range entry.RequiredProperties {
			if _, has := obj[prop]; has {
				continue
			}
			ok = false
			if top {
				r.errorf(path+"."+prop, "required by %s but missing", class)
			}
		}
	}

	for _, key := range sortedKeys(obj) {
		child := path + "." + key
		switch val := obj[key].(type) {
		case map[string]any:
			if _, typed := val[KeywordType]; typed && !r.requiredPresent(val, child, false) {
				delete(obj, key)
				r.warnf(child, "nested %v lacks required properties, removed", val[KeywordType])
			}
		case []any:
			kept := val[:0]
			for i, elem := range val {
				if nested, isObject := elem.(map[string]any); isObject {
					elemPath := fmt.Sprintf("%s[%d]", child, i)
					if _, typed := nested[KeywordType]; typed && !r.requiredPresent(nested, elemPath, false) {
						r.warnf(elemPath, "nested %v lacks required properties, removed", nested[KeywordType])
						continue
					}
				}
				kept = append(kept, elem)
			}
			if len(kept) == 0 {
				delete(obj, key)
			} else {
				obj[key] = kept
			}
		}
	}
	return ok
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}
