// Package agent implements the tool-calling command layer: the
// catalogs of tool declarations advertised to the model, and the
// executor that dispatches model-issued calls against the map,
// places, weather, and travel collaborators.
package agent

import "fmt"

// ParamType is a declared parameter type in a tool schema.
type ParamType string

const (
	TypeString  ParamType = "STRING"
	TypeNumber  ParamType = "NUMBER"
	TypeBoolean ParamType = "BOOLEAN"
	TypeArray   ParamType = "ARRAY"
	TypeObject  ParamType = "OBJECT"
)

// Param declares one tool parameter.
type Param struct {
	Type        ParamType
	Description string

	// Enum restricts a STRING parameter to a closed set of values.
	Enum []string

	// Items is the element schema for ARRAY parameters.
	Items *Param
}

func (p Param) schema() map[string]any {
	out := map[string]any{
		"type":        string(p.Type),
		"description": p.Description,
	}
	if len(p.Enum) > 0 {
		out["enum"] = p.Enum
	}
	if p.Items != nil {
		out["items"] = map[string]any{"type": string(p.Items.Type)}
	}
	return out
}

// Descriptor declares one callable tool: its unique name, the
// description shown to the model, and its parameter contract.
// Descriptors are immutable and defined at process start.
type Descriptor struct {
	Name        string
	Description string
	Params      map[string]Param
	Required    []string
}

// Declaration renders the descriptor in the function-declaration shape
// the model API expects.
func (d Descriptor) Declaration() map[string]any {
	props := map[string]any{}
	for name, p := range d.Params {
		props[name] = p.schema()
	}
	params := map[string]any{
		"type":       "OBJECT",
		"properties": props,
	}
	if len(d.Required) > 0 {
		params["required"] = d.Required
	}
	return map[string]any{
		"name":        d.Name,
		"description": d.Description,
		"parameters":  params,
	}
}

// Catalog is an ordered list of tool descriptors for one domain.
type Catalog []Descriptor

// Declarations renders every descriptor for the model API.
func (c Catalog) Declarations() []map[string]any {
	out := make([]map[string]any, 0, len(c))
	for _, d := range c {
		out = append(out, d.Declaration())
	}
	return out
}

// Names returns the tool names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for _, d := range c {
		out = append(out, d.Name)
	}
	return out
}

// Combine concatenates catalogs, failing on any duplicate tool name.
// Names must be unique across everything advertised to one session.
func Combine(catalogs ...Catalog) (Catalog, error) {
	var out Catalog
	seen := map[string]bool{}
	for _, c := range catalogs {
		for _, d := range c {
			if seen[d.Name] {
				return nil, fmt.Errorf("agent: duplicate tool name %q", d.Name)
			}
			seen[d.Name] = true
			out = append(out, d)
		}
	}
	return out, nil
}
