/**
# Copyright (C) 2016-2024, Xilinx, Inc. All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/venkatp36/XRT/internal/config"
	"github.com/venkatp36/XRT/internal/hal/hal2"
	"github.com/venkatp36/XRT/internal/info"
	"github.com/venkatp36/XRT/internal/xdp"
)

// Flags holds configurable settings as set via the CLI.
type Flags struct {
	Watch bool
}

func main() {
	var flags Flags

	c := cli.NewApp()
	c.Name = "xrt-device-discovery"
	c.Usage = "discover accelerator devices exposed by XRT HAL drivers"
	c.Version = info.GetVersionString()
	c.Action = func(ctx *cli.Context) error {
		return start(&flags)
	}
	c.Commands = []*cli.Command{
		newLoadXDPCommand(),
	}

	c.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "watch",
			Value:       false,
			Usage:       "keep running and rescan when the driver directory changes or on SIGHUP",
			Destination: &flags.Watch,
			EnvVars:     []string{"XRT_DISCOVERY_WATCH"},
		},
	}

	if err := c.Run(os.Args); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Error: %v", err)
	}
}

func start(flags *Flags) error {
	if err := discover(); err != nil {
		return err
	}
	if !flags.Watch {
		return nil
	}

	root := config.NewEnvConfiguration().InstallRoot()
	return watchAndRescan(filepath.Join(root, "lib"))
}

// discover runs one discovery pass and reports each device found.
func discover() error {
	devices, err := hal2.LoadDevices()
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		log.Warn("No devices found")
		return nil
	}

	for i, d := range devices {
		log.WithFields(log.Fields{
			"index":  i,
			"id":     d.ID(),
			"driver": d.Driver(),
		}).Info("Device")
	}
	return nil
}

// watchAndRescan blocks, re-running discovery whenever the driver
// directory changes or a SIGHUP arrives. SIGINT and SIGTERM end the
// watch.
func watchAndRescan(libDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create FS watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(libDir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", libDir, err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	log.Infof("Watching %s", libDir)
	for {
		select {
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				log.Infof("inotify: %s, rescanning", event)
				if err := discover(); err != nil {
					log.Errorf("Discovery failed: %v", err)
				}
			}

		case err := <-watcher.Errors:
			log.Errorf("inotify: %v", err)

		case s := <-sigs:
			switch s {
			case syscall.SIGHUP:
				log.Info("Received SIGHUP, rescanning")
				if err := discover(); err != nil {
					log.Errorf("Discovery failed: %v", err)
				}
			default:
				log.Infof("Received signal %v, shutting down", s)
				return nil
			}
		}
	}
}

func newLoadXDPCommand() *cli.Command {
	return &cli.Command{
		Name:  "load-xdp",
		Usage: "load and initialize the XDP profiling library",
		Action: func(ctx *cli.Context) error {
			if err := xdp.EnsureLoaded(); err != nil {
				return err
			}
			log.Info("XDP library loaded")
			return nil
		},
	}
}
