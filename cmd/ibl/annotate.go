package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ibl"
	"github.com/fwojciec/ibl/goquery"
)

// Run executes the annotate command.
func (c *AnnotateCmd) Run(deps *Dependencies) error {
	if len(c.Fields) == 0 && len(c.Variants) == 0 {
		fmt.Fprintf(deps.Stderr, "error: at least one --field or --variant is required\n")
		return ibl.Errorf(ibl.EINVALID, "at least one --field or --variant is required")
	}

	var selections []goquery.Selection
	for _, value := range c.Fields {
		s, err := ParseSelection(value)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
			return err
		}
		selections = append(selections, s)
	}
	for _, value := range c.Variants {
		s, err := ParseSelection(value)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
			return err
		}
		s.EachVariant = true
		selections = append(selections, s)
	}
	for _, name := range c.Required {
		marked := false
		for i := range selections {
			if selections[i].Attribute == name {
				selections[i].Required = true
				marked = true
				break
			}
		}
		if !marked {
			err := ibl.Errorf(ibl.EINVALID, "required attribute %q is not annotated", name)
			fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
			return err
		}
	}

	markup, err := readPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	annotator := &goquery.Annotator{Ignore: c.Ignore, IgnoreBeneath: c.IgnoreBeneath}
	out, err := annotator.Annotate(markup, selections)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	if c.Save == "" {
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}

	template := &ibl.Template{Name: c.Save, HTML: out}
	if err := deps.Templates.CreateTemplate(deps.Ctx, template); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Added template %q (%s)\n", template.Name, template.ID)
	return nil
}

// ParseSelection parses a SELECTOR=ATTR[@SOURCE] flag value. The last "="
// separates the selector so attribute selectors like a[rel=next] work.
func ParseSelection(value string) (goquery.Selection, error) {
	i := strings.LastIndex(value, "=")
	if i <= 0 || i == len(value)-1 {
		return goquery.Selection{}, ibl.Errorf(ibl.EINVALID, "invalid selection %q: want SELECTOR=ATTR[@SOURCE]", value)
	}
	s := goquery.Selection{Selector: strings.TrimSpace(value[:i])}
	target := value[i+1:]
	attr, source, hasSource := strings.Cut(target, "@")
	s.Attribute, s.Source = attr, source
	if s.Selector == "" || s.Attribute == "" || (hasSource && s.Source == "") {
		return goquery.Selection{}, ibl.Errorf(ibl.EINVALID, "invalid selection %q: want SELECTOR=ATTR[@SOURCE]", value)
	}
	return s, nil
}
