package main

import "github.com/AuraHubTeam/AuraHub/cmd"

func main() {
	cmd.Execute()
}
