package el

import (
	"strings"

	"github.com/aurochs-dev/aurochs/pkg/dom"
)

// attr creates an Attr with the given name and value.
func attr(name, value string) dom.Attr {
	return dom.Attr{Name: name, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Link and media attributes

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Boolean attributes, emitted with an empty value

// Defer sets the defer attribute.
func Defer() Attr { return attr("defer", "") }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", "") }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", "") }

// Required sets the required attribute.
func Required() Attr { return attr("required", "") }

// Metadata attributes

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }
