package main

import (
	"fmt"

	"github.com/fwojciec/ibl"
	"github.com/fwojciec/ibl/html"
)

// Run executes the template add command.
func (c *TemplateAddCmd) Run(deps *Dependencies) error {
	markup, err := readPage(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	page, err := html.NewParser().ParseTemplate(ibl.NewVocabulary(), c.Name, markup)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}
	if len(page.Annotations) == 0 {
		fmt.Fprintf(deps.Stderr, "warning: %s has no annotations\n", c.File)
	}

	template := &ibl.Template{ID: c.ID, Name: c.Name, HTML: markup}
	if err := deps.Templates.CreateTemplate(deps.Ctx, template); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added template %q (%s, %d annotations)\n", template.Name, template.ID, len(page.Annotations))
	return nil
}

// Run executes the template list command.
func (c *TemplateListCmd) Run(deps *Dependencies) error {
	filter := ibl.TemplateFilter{}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	templates, err := deps.Templates.FindTemplates(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	if len(templates) == 0 {
		fmt.Fprintln(deps.Stdout, "No templates found. Use 'ibl template add' to store one.")
		return nil
	}

	for _, t := range templates {
		created := ""
		if !t.CreatedAt.IsZero() {
			created = t.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", t.ID, t.Name, created)
	}

	return nil
}

// Run executes the template delete command.
func (c *TemplateDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return ibl.Errorf(ibl.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Templates.DeleteTemplate(deps.Ctx, c.ID); err != nil {
		if ibl.ErrorCode(err) == ibl.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: template %q not found. Use 'ibl template list' to see available templates.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted template %q\n", c.ID)
	return nil
}
