package braciole

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest is a declarative navigation table, typically shipped as a TOML
// file next to the app binary:
//
//	[[route]]
//	name = "game-detail"
//	pattern = "brick://library/games/:id"
//	transition = "push"
//
//	[[route]]
//	name = "power-menu"
//	pattern = "brick://system/power"
//	transition = "modal"
//
// A manifest only declares destinations; Bind connects them to the code
// that builds their content.
type Manifest struct {
	Routes []RouteDecl `toml:"route"`
}

// RouteDecl declares one navigable destination.
type RouteDecl struct {
	Name       string `toml:"name"`       // Unique key, used to look up the content builder
	Pattern    string `toml:"pattern"`    // URL pattern in Patterns syntax
	Transition string `toml:"transition"` // One of replace, push, modal, custom
	CustomID   string `toml:"custom_id"`  // Delegate behavior name; required when transition = "custom"
}

// transition maps the declared verb onto a Transition.
func (d *RouteDecl) transition() (Transition, error) {
	switch d.Transition {
	case "replace":
		return Replace(), nil
	case "push":
		return Push(), nil
	case "modal":
		return Modal(), nil
	case "custom":
		if d.CustomID == "" {
			return Transition{}, fmt.Errorf("braciole: route %q declares a custom transition without custom_id", d.Name)
		}
		return Custom(d.CustomID), nil
	default:
		return Transition{}, fmt.Errorf("braciole: route %q declares unknown transition %q", d.Name, d.Transition)
	}
}

// LoadManifest parses and validates a TOML navigation table.
func LoadManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("braciole: parse manifest: %w", err)
	}
	seen := make(map[string]bool, len(m.Routes))
	for i := range m.Routes {
		decl := &m.Routes[i]
		if decl.Name == "" {
			return nil, fmt.Errorf("braciole: manifest route %d has no name", i)
		}
		if seen[decl.Name] {
			return nil, fmt.Errorf("braciole: manifest declares route %q twice", decl.Name)
		}
		seen[decl.Name] = true
		if decl.Pattern == "" {
			return nil, fmt.Errorf("braciole: route %q has no pattern", decl.Name)
		}
		if _, err := decl.transition(); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// ContentBuilder builds the content for a declared route. params carries
// the values captured from the matched URL; visible is the node currently
// on screen, exactly as Route.Prepare receives it.
type ContentBuilder func(params map[string]string, visible Content) (Content, error)

// Bind connects the manifest's declarations to named content builders and
// returns a pattern table ready for Router.SetURLResolver. Every declared
// route must have a builder under its name.
func (m *Manifest) Bind(builders map[string]ContentBuilder) (*Patterns, error) {
	patterns := NewPatterns()
	for i := range m.Routes {
		decl := m.Routes[i]
		build, ok := builders[decl.Name]
		if !ok {
			return nil, fmt.Errorf("braciole: no content builder registered for route %q", decl.Name)
		}
		tr, err := decl.transition()
		if err != nil {
			return nil, err
		}
		err = patterns.Register(decl.Pattern, func(params map[string]string) Route {
			return &declaredRoute{
				name:       decl.Name,
				transition: tr,
				params:     params,
				build:      build,
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return patterns, nil
}

// declaredRoute is a Route backed by a manifest declaration. Each resolved
// URL produces a fresh value, so identity distinguishes two navigations to
// the same declaration.
type declaredRoute struct {
	name       string
	transition Transition
	params     map[string]string
	build      ContentBuilder
}

func (r *declaredRoute) Transition() Transition { return r.transition }

func (r *declaredRoute) Prepare(visible Content) (Content, error) {
	return r.build(r.params, visible)
}

func (r *declaredRoute) String() string { return r.name }
