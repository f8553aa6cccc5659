package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/agglayer/aggsandbox/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	// A = {{B}} is not valid TOML, it is quoted and marked as A = "{{B:int}}" while parsing
	bareVarRe   = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe = regexp.MustCompile(`=\s*\"\{\{([^}:]+:int)\}\}\"`)
	markedVarRe = regexp.MustCompile(`\{\{([^}:]+:int)\}\}`)
)

// FileData is one configuration source, the later ones override the former
type FileData struct {
	Name    string
	Content string
}

// Renderer merges TOML sources and resolves the {{Var}} references inside
// them. A var is looked up first in the environment as <Prefix>_<Var> (dots
// replaced by underscores) and then in the merged data.
type Renderer struct {
	Files     []FileData
	LookupEnv func(key string) (string, bool)
	EnvPrefix string
}

// NewRenderer returns a Renderer reading the process environment
func NewRenderer(files []FileData, envPrefix string) *Renderer {
	return &Renderer{
		Files:     files,
		LookupEnv: os.LookupEnv,
		EnvPrefix: envPrefix,
	}
}

// Render merges all the files and resolves all the vars
func (r *Renderer) Render() (string, error) {
	merged, err := r.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}

	return r.resolve(merged)
}

// Merge loads every file on top of the previous ones, vars are left untouched
func (r *Renderer) Merge() (string, error) {
	k := koanf.New(".")
	for _, f := range r.Files {
		content := markVars(f.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading config source %s. Err:%v", f.Name, err)
			return "", fmt.Errorf("fail to load config source %s as toml. Err: %w", f.Name, err)
		}
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}

	return unquoteVars(string(out)), nil
}

func (r *Renderer) resolve(data string) (string, error) {
	tpl, values, err := r.parse(data)
	if err != nil {
		return "", err
	}
	rendered := stripMarks(r.execute(tpl, values))
	if missing := r.missingVars(tpl, values); len(missing) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
	}

	// every var is defined somewhere, what is left after one pass are
	// vars pointing to other vars. Each pass must reduce them or it is a cycle
	current := unquoteVars(rendered)
	pending := varsIn(current)
	for len(pending) > 0 {
		log.Debugf("resolving nested config vars: %v", pending)
		tpl, values, err := r.parse(current)
		if err != nil {
			return "", fmt.Errorf("fails to read template while resolving nested vars. Err: %w", err)
		}
		next := stripMarks(unquoteVars(r.execute(tpl, values)))
		nextPending := varsIn(next)
		if len(nextPending) == len(pending) {
			return rendered, fmt.Errorf("not resolved cycle vars: %v. Err: %w", nextPending, ErrCycleVars)
		}
		current, pending = next, nextPending
	}

	return current, nil
}

// parse returns data as a template together with the values it defines
func (r *Renderer) parse(data string) (*fasttemplate.Template, map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(markVars(data))), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing config data. Err: %w", err)
	}

	return tpl, k.All(), nil
}

func (r *Renderer) execute(tpl *fasttemplate.Template, values map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := r.env(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := values[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}

		return w.Write([]byte(startTag + tag + endTag))
	})
}

// missingVars returns the vars defined neither in values nor in the environment
func (r *Renderer) missingVars(tpl *fasttemplate.Template, values map[string]interface{}) []string {
	var missing []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		_, inEnv := r.env(tag)
		_, inValues := values[tag]
		if !inEnv && !inValues && !contains(missing, tag) {
			missing = append(missing, tag)
		}

		return 0, nil
	})

	return missing
}

func (r *Renderer) env(tag string) (string, bool) {
	if r.LookupEnv == nil {
		return "", false
	}

	return r.LookupEnv(r.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

func varsIn(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})

	return vars
}

func markVars(data string) string {
	return bareVarRe.ReplaceAllString(data, `= "{{${1}:int}}"`)
}

func unquoteVars(data string) string {
	return quotedVarRe.ReplaceAllStringFunc(data, func(match string) string {
		sub := quotedVarRe.FindStringSubmatch(match)
		return "= " + startTag + strings.Split(sub[1], ":")[0] + endTag
	})
}

func stripMarks(data string) string {
	return markedVarRe.ReplaceAllStringFunc(data, func(match string) string {
		sub := markedVarRe.FindStringSubmatch(match)
		return startTag + strings.Split(sub[1], ":")[0] + endTag
	})
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}

	return false
}

func convertFileToToml(data string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(data)), json.Parser()); err != nil {
			return data, fmt.Errorf("error loading json file. Err: %w", err)
		}
		out, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return data, fmt.Errorf("error converting json to toml. Err: %w", err)
		}

		return string(out), nil
	case "yml", "yaml", "ini":
		return data, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return data, nil
	}
}
