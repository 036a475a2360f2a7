package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/util"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the collection sites",
	Long: `List the microplastic collection sites shown on the map.

Examples:
  plasticbusters sites                # All sites
  plasticbusters sites --aquatic      # Aquatic sites only
  plasticbusters sites --terrestrial  # Terrestrial sites only`,
	RunE: runSites,
}

var (
	sitesAquatic     bool
	sitesTerrestrial bool
)

func init() {
	rootCmd.AddCommand(sitesCmd)

	sitesCmd.Flags().BoolVar(&sitesAquatic, "aquatic", false, "Show aquatic sites")
	sitesCmd.Flags().BoolVar(&sitesTerrestrial, "terrestrial", false, "Show terrestrial sites")
}

func runSites(cmd *cobra.Command, args []string) error {
	filter := domain.AllSites
	if sitesAquatic || sitesTerrestrial {
		filter = domain.SiteFilter{Aquatic: sitesAquatic, Terrestrial: sitesTerrestrial}
	}
	return writeSites(cmd.OutOrStdout(), filter.Apply(domain.CollectionSites()))
}

func writeSites(out io.Writer, sites []domain.Site) error {
	if len(sites) == 0 {
		_, err := fmt.Fprintln(out, "No sites found")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tLAT\tLNG\tINTENSITY")
	fmt.Fprintln(w, "----\t--------\t---\t---\t---------")
	for _, s := range sites {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%s\n", s.Name, s.Category, s.Latitude, s.Longitude, util.FormatCount(s.Intensity))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	hottest, _ := domain.HottestSite(sites)
	_, err := fmt.Fprintf(out, "\nShowing %d site(s), most plastic at %s\n", len(sites), hottest.Name)
	return err
}
