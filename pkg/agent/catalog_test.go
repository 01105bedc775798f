package agent

import (
	"testing"
)

func TestCombinedCatalogNamesUnique(t *testing.T) {
	combined, err := Combine(NavigationCatalog(), PlacesCatalog(), WeatherCatalog(), TravelCatalog())
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	seen := map[string]bool{}
	for _, name := range combined.Names() {
		if seen[name] {
			t.Errorf("duplicate tool name %q", name)
		}
		seen[name] = true
	}
}

func TestCombineRejectsDuplicates(t *testing.T) {
	if _, err := Combine(NavigationCatalog(), NavigationCatalog()); err == nil {
		t.Fatal("Combine accepted duplicated catalog")
	}
}

func TestDeclarationShape(t *testing.T) {
	var mapType *Descriptor
	for _, d := range NavigationCatalog() {
		if d.Name == "setMapTypeId" {
			d := d
			mapType = &d
		}
	}
	if mapType == nil {
		t.Fatal("setMapTypeId not declared")
	}

	decl := mapType.Declaration()
	if decl["name"] != "setMapTypeId" {
		t.Errorf("name = %v", decl["name"])
	}
	params, ok := decl["parameters"].(map[string]any)
	if !ok {
		t.Fatal("parameters missing")
	}
	if params["type"] != "OBJECT" {
		t.Errorf("parameters.type = %v, want OBJECT", params["type"])
	}
	props := params["properties"].(map[string]any)
	schema := props["mapTypeId"].(map[string]any)
	enum, ok := schema["enum"].([]string)
	if !ok || len(enum) != 4 {
		t.Errorf("mapTypeId enum = %v, want the four map types", schema["enum"])
	}
	required, ok := params["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "mapTypeId" {
		t.Errorf("required = %v", params["required"])
	}
}

func TestArrayParamSchema(t *testing.T) {
	for _, d := range PlacesCatalog() {
		if d.Name != "searchNearby" {
			continue
		}
		schema := d.Params["types"].schema()
		items, ok := schema["items"].(map[string]any)
		if !ok {
			t.Fatal("types has no items schema")
		}
		if items["type"] != "STRING" {
			t.Errorf("items.type = %v, want STRING", items["type"])
		}
		return
	}
	t.Fatal("searchNearby not declared")
}

func TestDeclarationsRenderAllTools(t *testing.T) {
	catalog := PlacesCatalog()
	decls := catalog.Declarations()
	if len(decls) != len(catalog) {
		t.Fatalf("got %d declarations for %d tools", len(decls), len(catalog))
	}
	for i, decl := range decls {
		if decl["name"] != catalog[i].Name {
			t.Errorf("declaration %d name = %v, want %s", i, decl["name"], catalog[i].Name)
		}
		if decl["description"] == "" {
			t.Errorf("tool %s has empty description", catalog[i].Name)
		}
	}
}
