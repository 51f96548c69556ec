package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sagarc03/mintdb"
	"github.com/sagarc03/mintdb/clientcli"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Manage connection profiles",
	Long: `Manage connection profiles in the configuration file.

Profiles allow you to save connection settings for multiple databases
and switch between them using --profile.

Configuration is stored in ~/.config/mintdb/config.yaml`,
}

var configureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured profiles",
	Long: `List all profiles configured in the config file.

The default profile is marked with an asterisk (*).`,
	RunE: runConfigureList,
}

var configureAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new profile interactively.

You will be prompted for the driver kind and its connection parameters.
Passwords are optional; when a profile has none, opening the connection
prompts for it.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigureAdd,
}

var configureRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runConfigureRemove,
}

var configureSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigureSetDefault,
}

func init() {
	configureCmd.AddCommand(configureListCmd)
	configureCmd.AddCommand(configureAddCmd)
	configureCmd.AddCommand(configureRemoveCmd)
	configureCmd.AddCommand(configureSetDefaultCmd)

	rootCmd.AddCommand(configureCmd)
}

func runConfigureList(cmd *cobra.Command, _ []string) error {
	configPath, err := clientcli.DefaultConfigPath()
	if err != nil {
		return err
	}

	file, err := clientcli.LoadConfigFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("No profiles configured.")
			fmt.Println("Run 'mintdb configure add <name>' to create one.")
			return nil
		}
		return fmt.Errorf("load config: %w", err)
	}

	if len(file.Profiles) == 0 {
		fmt.Println("No profiles configured.")
		fmt.Println("Run 'mintdb configure add <name>' to create one.")
		return nil
	}

	def, _ := file.GetDefaultProfile()
	for _, p := range file.Profiles {
		marker := " "
		if def != nil && p.Name == def.Name {
			marker = "*"
		}
		target := p.Host
		if p.Driver == string(mintdb.DriverSQLite) {
			target = p.FilePath
		}
		if p.Driver == string(mintdb.DriverODBC) && p.DSN != "" {
			target = "DSN=" + p.DSN
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-20s %-10s %s\n", marker, p.Name, p.Driver, target)
	}
	return nil
}

func runConfigureAdd(_ *cobra.Command, args []string) error {
	name := args[0]

	configPath, err := clientcli.DefaultConfigPath()
	if err != nil {
		return err
	}

	// Load existing config or create new
	file, err := clientcli.LoadConfigFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file = &clientcli.ConfigFile{}
		} else {
			return fmt.Errorf("load config: %w", err)
		}
	}

	// Check if profile already exists
	existing, _ := file.GetProfile(name)
	if existing != nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Profile '%s' already exists. Update it", name),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	profile, err := promptProfile(name)
	if err != nil {
		return handlePromptError(err)
	}

	// Prompt for default
	if len(file.Profiles) == 0 {
		profile.Default = true // First profile is always default
	} else {
		defaultPrompt := promptui.Prompt{
			Label:     "Set as default profile",
			IsConfirm: true,
		}
		if _, promptErr := defaultPrompt.Run(); promptErr == nil {
			profile.Default = true
		}
	}

	if existing != nil {
		err = file.UpdateProfile(*profile)
	} else {
		err = file.AddProfile(*profile)
	}
	if err != nil {
		return err
	}
	if profile.Default {
		_ = file.SetDefault(profile.Name)
	}

	if err := clientcli.SaveConfigFile(configPath, file); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Profile '%s' saved to %s\n", name, configPath)
	return nil
}

// promptProfile walks the user through the connection parameters for one
// profile. Which prompts run depends on the chosen driver kind.
func promptProfile(name string) (*clientcli.Profile, error) {
	kinds := mintdb.Drivers()
	items := make([]string, len(kinds))
	for i, k := range kinds {
		items[i] = string(k)
	}

	driverSelect := promptui.Select{
		Label: "Driver",
		Items: items,
	}
	_, driverStr, err := driverSelect.Run()
	if err != nil {
		return nil, err
	}

	p := &clientcli.Profile{Name: name, Driver: driverStr}
	kind := mintdb.DriverKind(driverStr)

	if kind == mintdb.DriverSQLite {
		filePrompt := promptui.Prompt{
			Label: "Database file",
			Validate: func(input string) error {
				if input == "" {
					return errors.New("database file is required")
				}
				return nil
			},
		}
		if p.FilePath, err = filePrompt.Run(); err != nil {
			return nil, err
		}
		return p, nil
	}

	if kind == mintdb.DriverODBC {
		dsnPrompt := promptui.Prompt{
			Label: "Data source name (blank to use server/database)",
		}
		if p.DSN, err = dsnPrompt.Run(); err != nil {
			return nil, err
		}
	}

	if p.DSN == "" {
		hostPrompt := promptui.Prompt{
			Label:   "Host",
			Default: "localhost",
		}
		if p.Host, err = hostPrompt.Run(); err != nil {
			return nil, err
		}

		portPrompt := promptui.Prompt{
			Label:   "Port",
			Default: strconv.Itoa(kind.DefaultPort()),
			Validate: func(input string) error {
				if input == "" {
					return nil
				}
				n, convErr := strconv.Atoi(input)
				if convErr != nil || n < 0 || n > 65535 {
					return errors.New("port must be a number between 0 and 65535")
				}
				return nil
			},
		}
		portStr, promptErr := portPrompt.Run()
		if promptErr != nil {
			return nil, promptErr
		}
		if portStr != "" {
			p.Port, _ = strconv.Atoi(portStr)
		}

		dbPrompt := promptui.Prompt{
			Label: "Database name",
		}
		if p.DBName, err = dbPrompt.Run(); err != nil {
			return nil, err
		}
	}

	userPrompt := promptui.Prompt{
		Label: "User",
	}
	if p.User, err = userPrompt.Run(); err != nil {
		return nil, err
	}

	passwordPrompt := promptui.Prompt{
		Label: "Password (blank to prompt at connect time)",
		Mask:  '*',
	}
	if p.Password, err = passwordPrompt.Run(); err != nil {
		return nil, err
	}

	return p, nil
}

func runConfigureRemove(_ *cobra.Command, args []string) error {
	configPath, err := clientcli.DefaultConfigPath()
	if err != nil {
		return err
	}

	file, err := clientcli.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := file.RemoveProfile(args[0]); err != nil {
		return err
	}

	if err := clientcli.SaveConfigFile(configPath, file); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Profile '%s' removed.\n", args[0])
	return nil
}

func runConfigureSetDefault(_ *cobra.Command, args []string) error {
	configPath, err := clientcli.DefaultConfigPath()
	if err != nil {
		return err
	}

	file, err := clientcli.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := file.SetDefault(args[0]); err != nil {
		return err
	}

	if err := clientcli.SaveConfigFile(configPath, file); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Default profile set to '%s'.\n", args[0])
	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
