/*
 * MilkyGo - chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"

	"github.com/frankkopp/MilkyGo/internal/config"
	"github.com/frankkopp/MilkyGo/internal/console"
	"github.com/frankkopp/MilkyGo/internal/logging"
	"github.com/frankkopp/MilkyGo/internal/movegen"
	"github.com/frankkopp/MilkyGo/internal/position"
	"github.com/frankkopp/MilkyGo/internal/selftest"
	"github.com/frankkopp/MilkyGo/internal/version"
)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchlogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	moveTime := flag.Int("movetime", 0, "engine search time per move in milliseconds\noverrides the config file")
	depth := flag.Int("depth", 0, "fixed engine search depth\noverrides the config file and disables the time budget")
	perftDepth := flag.Int("perft", 0, "runs perft on the start position up to the given depth and exits")
	deepTest := flag.Bool("deep", false, "extends the self test to the slow perft depths")
	cpuProfile := flag.Bool("cpuprofile", false, "writes a cpu profile to the working directory")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// After reading the configuration file and the defaults we can now overwrite
	// settings with command line options.
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchlogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *moveTime > 0 {
		config.Settings.Search.MoveTimeMs = *moveTime
		config.Settings.Search.Depth = 0
	}
	if *depth > 0 {
		config.Settings.Search.Depth = *depth
		config.Settings.Search.MoveTimeMs = 0
	}

	// resetting log level on the standard log - required as most
	// packages include the standard logger as a global var and
	// therefore even before main() is called.
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// perft
	if *perftDepth != 0 {
		perftTest := movegen.NewPerft()
		for i := 1; i <= *perftDepth; i++ {
			perftTest.StartPerft(position.NewPosition(), i, true)
		}
		return
	}

	// self test
	if flag.Arg(0) == "test" {
		if !selftest.NewSelfTest().Run(*deepTest) {
			os.Exit(1)
		}
		return
	}

	// interactive game against the engine
	c := console.NewConsole()
	if err := c.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func printVersionInfo() {
	fmt.Printf("MilkyGo %s\n", version.Version())
	fmt.Println("Environment:")
	fmt.Printf("  Using GO version %s\n", runtime.Version())
	fmt.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	fmt.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	fmt.Printf("  Working directory: %s\n", cwd)
}
