package main

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
)

type paramsListOpts struct {
	*rootOpts
	output string
}

func newParamsList(parent *rootOpts) *paramsListOpts {
	return &paramsListOpts{rootOpts: parent}
}

func (opts *paramsListOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-params",
		Short: "List every parameter and whether the environment sets it",
		Example: makeExample(
			"hooverctl list-params",
			"hooverctl list-params -o yaml",
		),
		RunE: opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text",
		"the format to output (text, yaml)")
	return cmd
}

type paramStatus struct {
	Name     string  `json:"name"`
	Env      string  `json:"env"`
	Default  *string `json:"default,omitempty"`
	Required bool    `json:"required"`
	EnvSet   bool    `json:"envSet"`
}

func (opts *paramsListOpts) RunE(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errorWantedNoArgs
	}

	var statuses []paramStatus
	for _, spec := range opts.registry.List() {
		statuses = append(statuses, paramStatus{
			Name:     spec.Name,
			Env:      spec.Env,
			Default:  spec.Default,
			Required: spec.Required,
			EnvSet:   os.Getenv(spec.Env) != "",
		})
	}

	switch opts.output {
	case "text":
		w := newTabwriter()
		fmt.Fprintf(w, "PARAMETER\tENV\tDEFAULT\tREQUIRED\tENV-SET\n")
		for _, s := range statuses {
			var def string
			if s.Default != nil {
				def = *s.Default
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.Env, def, yesNo(s.Required), yesNo(s.EnvSet))
		}
		w.Flush()
		return nil
	case "yaml":
		out, err := yaml.Marshal(statuses)
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(out)
		return nil
	}
	return errorInvalidOutputFormat
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
