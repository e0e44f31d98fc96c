package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mobile-next/mobileinput/commands"
	"github.com/mobile-next/mobileinput/daemon"
	"github.com/mobile-next/mobileinput/server"
	"github.com/mobile-next/mobileinput/session"
	"github.com/mobile-next/mobileinput/utils"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the mobileinput JSON-RPC server.`,
}

// serverAddr picks the --listen flag, then the configured address
func serverAddr() string {
	if listenAddr != "" {
		return listenAddr
	}
	return commands.GetConfig().Server.Listen
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mobileinput server",
	Long:  `Starts the JSON-RPC server on /rpc (HTTP) and /ws (WebSocket).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serverAddr()

		// GetBool cannot fail for defined flags
		enableCORS, _ := cmd.Flags().GetBool("cors")
		isDaemon, _ := cmd.Flags().GetBool("daemon")
		if !cmd.Flags().Changed("cors") {
			enableCORS = commands.GetConfig().Server.CORS
		}

		if isDaemon && !daemon.IsChild() {
			// the child's bind error would never reach us
			bindAddr, err := server.NormalizeAddr(addr)
			if err != nil {
				return err
			}
			if !utils.IsAddrAvailable(bindAddr) {
				return fmt.Errorf("address %s is already in use", addr)
			}

			_, err = daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", addr)
			return nil
		}

		return server.StartServer(cmd.Context(), addr, enableCORS, session.NewShutdownHook())
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop a running mobileinput server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := daemon.KillServer(serverAddr())
		if err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

var serverCallCmd = &cobra.Command{
	Use:   "call [method] [params-json]",
	Short: "Call a JSON-RPC method on a running server",
	Long:  `Sends one JSON-RPC request to a running server and prints its result, e.g. call input_key '{"key":"back","action":"press"}'.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var params json.RawMessage
		if len(args) == 2 {
			if !json.Valid([]byte(args[1])) {
				return fmt.Errorf("params must be valid JSON")
			}
			params = json.RawMessage(args[1])
		}

		result, err := daemon.Call(serverAddr(), args[0], params)
		if err != nil {
			return err
		}

		var v interface{}
		if err := json.Unmarshal(result, &v); err != nil {
			return fmt.Errorf("failed to decode result: %w", err)
		}
		printJson(v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// add server subcommands
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)
	serverCmd.AddCommand(serverCallCmd)

	serverCmd.PersistentFlags().StringVar(&listenAddr, "listen", "", "Server address (e.g., 'localhost:12000' or '0.0.0.0:13000'), defaults to the configured address")

	// server start flags
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")
}
