// Command bookshelf 图书记录管理服务
//
// 子命令:
//
//	bookshelf serve   启动HTTP服务(默认)
//	bookshelf seed    只填充种子数据
//	bookshelf events  消费并打印图书变更事件
//
// @title        Bookshelf API
// @version      1.0
// @description  图书记录管理服务:分页查询、增删改与统计
// @BasePath     /
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "Book records service",
	Long: `bookshelf stores book records and serves a paginated, filterable,
sortable listing, create/update/delete operations and aggregate statistics
over HTTP, together with the static frontend.

Configuration comes from an optional YAML file (--config) and BOOKSTORE_*
environment variables. DATABASE_URL is required.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			color.NoColor = true
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ./config.yaml or ./config/config.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newServeCmd(),
		newSeedCmd(),
		newEventsCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
