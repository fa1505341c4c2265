//go:build mage
// +build mage

package main

import (
	"archive/zip"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var LINUX_BIN = "katib-console"
var LINUX_ARCHIVE = "katib-console-linux.tar.xz"
var WINDOWS_BIN = "katib-console.exe"
var WINDOWS_ARCHIVE = "katib-console-windows.zip"
var ANDROID_APK = "katib-console.apk"
var APP_ID = "org.kubeflow.katib.Console"

var Aliases = map[string]interface{}{
	"c": Clean,
	"l": Linux,
	"w": Windows,
	"a": Android,
	"t": Test,
}

func versionFlag() string {
	return "-X=main.VersionString=" + embeddedVersion()
}

func goFlags(platform string) string {
	flags := versionFlag()
	switch platform {
	case "windows":
		flags += " -H=windowsgui"
	}
	return "-ldflags=" + flags
}

func embeddedVersion() string {
	gitVersion, err := sh.Output("git", "describe", "--tags", "--dirty", "--always")
	if err != nil {
		return "git"
	}
	return gitVersion
}

// Build all binary targets
func All() {
	mg.Deps(Linux, Windows, Android)
}

// Run the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Build for specific platforms with a given binary name.
func BuildFor(platform, binary string) error {
	_, err := sh.Exec(map[string]string{"GOOS": platform, "GOFLAGS": goFlags(platform)},
		os.Stdout, os.Stderr, "go", "build", "-o", binary, ".")
	return err
}

// Build Linux
func LinuxBin() error {
	return BuildFor("linux", LINUX_BIN)
}

// Build Linux and archive/compress binary
func Linux() error {
	mg.Deps(LinuxBin)
	return sh.Run("tar", "-cJf", LINUX_ARCHIVE, LINUX_BIN)
}

// Build Windows
func WindowsBin() error {
	_, err := sh.Exec(nil, os.Stdout, os.Stderr,
		"go", "run", "gioui.org/cmd/gogio", "-x", "-target", "windows",
		"-ldflags", versionFlag(), "-o", WINDOWS_BIN, ".")
	return err
}

// Build Windows binary and zip it up
func Windows() error {
	mg.Deps(WindowsBin)
	file, err := os.Create(WINDOWS_ARCHIVE)
	if err != nil {
		return err
	}
	defer file.Close()
	zipWriter := zip.NewWriter(file)
	f, err := zipWriter.Create(WINDOWS_BIN)
	if err != nil {
		return err
	}
	body, err := os.ReadFile(WINDOWS_BIN)
	if err != nil {
		return err
	}
	if _, err = f.Write(body); err != nil {
		return err
	}
	return zipWriter.Close()
}

// Build Android APK
func Android() error {
	_, err := sh.Exec(nil, os.Stdout, os.Stderr,
		"go", "run", "gioui.org/cmd/gogio", "-x", "-target", "android",
		"-appid", APP_ID, "-ldflags", versionFlag(), "-o", ANDROID_APK, ".")
	return err
}

// Clean up
func Clean() error {
	return sh.Run("rm", "-rf", WINDOWS_ARCHIVE, WINDOWS_BIN, LINUX_ARCHIVE, LINUX_BIN, ANDROID_APK)
}
