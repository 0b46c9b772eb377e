package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tacogips/dzmod/internal/app"
)

// orderCmd represents the order command group
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage the server mod load order",
	Long: `Manage the mods= load-order line in the server config file.

Only that single line is ever rewritten; every other line of the config
file is left byte-for-byte untouched.

Examples:
  dzmod order list
  dzmod order add @CF
  dzmod order remove @CF
  dzmod order move @CF 0
  dzmod order up @Banov
  dzmod order down @Banov`,
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the load order",
	Args:  cobra.NoArgs,
	RunE:  runOrderList,
}

var orderAddCmd = &cobra.Command{
	Use:   "add <mod>",
	Short: "Append an installed mod to the load order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrderMutation(cmd, func(opts app.OrderOptions) (*app.OrderResult, error) {
			return app.OrderAdd(cmd.Context(), opts, args[0])
		})
	},
}

var orderRemoveCmd = &cobra.Command{
	Use:   "remove <mod>",
	Short: "Remove a mod from the load order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrderMutation(cmd, func(opts app.OrderOptions) (*app.OrderResult, error) {
			return app.OrderRemove(cmd.Context(), opts, args[0])
		})
	},
}

var orderMoveCmd = &cobra.Command{
	Use:   "move <mod> <position>",
	Short: "Move a mod to a position, counted from zero",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("position must be a number: %s", args[1])
		}
		return runOrderMutation(cmd, func(opts app.OrderOptions) (*app.OrderResult, error) {
			return app.OrderMove(cmd.Context(), opts, args[0], to)
		})
	},
}

var orderUpCmd = &cobra.Command{
	Use:   "up <mod>",
	Short: "Move a mod one position earlier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrderMutation(cmd, func(opts app.OrderOptions) (*app.OrderResult, error) {
			return app.OrderUp(cmd.Context(), opts, args[0])
		})
	},
}

var orderDownCmd = &cobra.Command{
	Use:   "down <mod>",
	Short: "Move a mod one position later",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrderMutation(cmd, func(opts app.OrderOptions) (*app.OrderResult, error) {
			return app.OrderDown(cmd.Context(), opts, args[0])
		})
	},
}

func init() {
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderAddCmd)
	orderCmd.AddCommand(orderRemoveCmd)
	orderCmd.AddCommand(orderMoveCmd)
	orderCmd.AddCommand(orderUpCmd)
	orderCmd.AddCommand(orderDownCmd)
}

func runOrderList(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	result, err := app.OrderList(cmd.Context(), orderOptions(env))
	if err != nil {
		return err
	}
	printOrder(result.Names)
	return nil
}

func runOrderMutation(cmd *cobra.Command, op func(app.OrderOptions) (*app.OrderResult, error)) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	result, err := op(orderOptions(env))
	if err != nil {
		return err
	}
	if result.Changed {
		printSuccess("Load order updated")
	} else {
		printInfo("Load order unchanged")
	}
	printOrder(result.Names)
	return nil
}

func orderOptions(env *cliEnv) app.OrderOptions {
	return app.OrderOptions{
		Config:        env.Config,
		ServerDir:     env.ServerDir,
		LoadOrderPath: env.LoadOrderPath,
	}
}

func printOrder(names []string) {
	if len(names) == 0 {
		printInfo("Load order is empty")
		return
	}
	for i, name := range names {
		printInfo(fmt.Sprintf("%3d  %s", i, name))
	}
}
