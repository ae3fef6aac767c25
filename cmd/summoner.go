package cmd

import (
	"fmt"
	"io"
	"strings"

	"league-assets/core/assets"
	"league-assets/feature/champion"
	"league-assets/feature/riotapi"

	"github.com/spf13/cobra"
)

var (
	summonerByPUUID bool
	summonerTop     int
)

// summonerCmd represents the summoner command
var summonerCmd = &cobra.Command{
	Use:   "summoner <name>",
	Short: "Look up a summoner and their best champions",
	Long:  `Queries the dynamic API for a summoner and names their top champion masteries from the local champion cache.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		client, err := riotapi.NewClient(rt.cfg.Riot, rt.cfg.HTTP, rt.logger)
		if err != nil {
			return err
		}

		req := riotapi.SummonerByName(strings.Join(args, " "))
		if summonerByPUUID {
			req = riotapi.SummonerByPUUID(args[0])
		}
		s, err := riotapi.Send(ctx, client, req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (level %d)\n  puuid: %s\n  last change: %s\n", s.Name, s.Level, s.PUUID, s.LastChange().Format("2006-01-02 15:04"))

		masteries, err := riotapi.Send(ctx, client, riotapi.ChampionMasteries(s.PUUID))
		if err != nil {
			return err
		}
		names, err := championNames(cmd, rt)
		if err != nil {
			return err
		}
		for i, m := range masteries {
			if i >= summonerTop {
				break
			}
			fmt.Fprintf(out, "  %-16s level %d, %d points\n", names(m.ChampionID), m.ChampionLevel, m.ChampionPoints)
		}
		return nil
	},
}

// rotationCmd represents the rotation command
var rotationCmd = &cobra.Command{
	Use:   "rotation",
	Short: "Show the free champion rotation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(ctx)

		client, err := riotapi.NewClient(rt.cfg.Riot, rt.cfg.HTTP, rt.logger)
		if err != nil {
			return err
		}
		rot, err := riotapi.Send(ctx, client, riotapi.ChampionRotation())
		if err != nil {
			return err
		}
		names, err := championNames(cmd, rt)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printRotation(out, "Free this week", rot.FreeChampionIDs, names)
		printRotation(out, fmt.Sprintf("New players (up to level %d)", rot.MaxNewPlayerLevel), rot.FreeChampionIDsForNewPlayers, names)
		return nil
	},
}

// championNames resolves numeric champion keys through the champion cache,
// falling back to the key itself for champions the cache does not know yet.
func championNames(cmd *cobra.Command, rt *runtime) (func(int) string, error) {
	cache, err := assets.Open(cmd.Context(), rt.registry, champion.Kind)
	if err != nil {
		return nil, err
	}
	byKey := champion.ByKey(cache.Contents())
	return func(key int) string {
		if c, ok := byKey[key]; ok {
			return c.Name
		}
		return fmt.Sprintf("#%d", key)
	}, nil
}

func printRotation(out io.Writer, title string, ids []int, names func(int) string) {
	list := make([]string, 0, len(ids))
	for _, id := range ids {
		list = append(list, names(id))
	}
	fmt.Fprintf(out, "%s: %s\n", title, strings.Join(list, ", "))
}

func init() {
	summonerCmd.Flags().BoolVar(&summonerByPUUID, "puuid", false, "treat the argument as a PUUID")
	summonerCmd.Flags().IntVar(&summonerTop, "top", 5, "number of champion masteries to show")
	RootCmd.AddCommand(summonerCmd, rotationCmd)
}
