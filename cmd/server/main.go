package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vskvj3/listd/internal/core"
	"github.com/vskvj3/listd/internal/network"
	"github.com/vskvj3/listd/internal/persistence"
	"github.com/vskvj3/listd/internal/utils"
)

func main() {
	// Parse command-line arguments
	portPtr := flag.String("port", "", "Port of server")
	configPtr := flag.String("config", "", "Path to the config file")
	dictPtr := flag.String("dict", "", "Text file of words to preload into the trie")
	debugPtr := flag.Bool("debug", false, "Print debug logs to the console")
	flag.Parse()

	logger := utils.NewLogger("", *debugPtr)

	// Load configurations
	configPath := *configPtr
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			logger.Error("Error getting home directory: " + err.Error())
			return
		}
		configPath = filepath.Join(homeDir, ".listd", "listd.conf")
	}

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		logger.Error("Error loading configuration: " + err.Error())
		return
	}
	logger.Info("Loaded configurations from " + configPath)

	// Determine Port
	port := strconv.Itoa(config.Port)
	if *portPtr != "" {
		port = *portPtr
		config.Port, err = strconv.Atoi(*portPtr)
		if err != nil {
			logger.Error("Port must be an integer: " + err.Error())
			return
		}
	}
	logger.Info("Port assigned: " + port)

	database := core.NewDatabase()

	// Preload the dictionary, flag over config
	dictFile := config.DictFile
	if *dictPtr != "" {
		dictFile = *dictPtr
	}
	if dictFile != "" {
		count, err := database.LoadWords(dictFile)
		if err != nil {
			logger.Warn("Could not load dictionary: " + err.Error())
		} else {
			logger.Info(fmt.Sprintf("Loaded %d words from %s", count, dictFile))
		}
	}

	// Open the binlog unless persistence is turned off
	var disk *persistence.Log
	if config.Persistence != "off" {
		path, err := persistence.DefaultPath()
		if err != nil {
			logger.Error("Could not resolve binlog path: " + err.Error())
			return
		}
		disk, err = persistence.Open(path)
		if err != nil {
			logger.Error("Could not open binlog: " + err.Error())
			return
		}
		defer disk.Close()
	} else {
		logger.Warn("Persistence is off; data will not survive a restart")
	}

	handler := core.NewCommandHandler(database, disk)

	// Create the network server
	server, err := network.NewServer(port, handler)
	if err != nil {
		logger.Error("Server creation failed: " + err.Error())
		return
	}
	server.Start()
}
