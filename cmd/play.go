package cmd

import "github.com/spf13/cobra"

func newPlayCmd(rt *runtime) *cobra.Command {
	c := &cobra.Command{
		Use:         "play",
		Short:       "Open the course",
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runApp(cmd)
		},
	}
	c.Flags().Bool("skip-intro", false, "Go straight to the course menu")
	return c
}
