package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/logandonley/font-engine/internal/config"
)

var _ = Describe("Config", func() {
	It("should apply defaults", func() {
		cfg, err := config.LoadFrom(map[string]string{})
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Dirs).To(BeEmpty())
		Expect(cfg.Recurse).To(BeTrue())
		Expect(cfg.System).To(BeFalse())
		Expect(cfg.LogLevel).To(Equal(zapcore.WarnLevel))
	})

	It("should read every variable", func() {
		cfg, err := config.LoadFrom(map[string]string{
			"FONTREG_DIRS":      "/opt/fonts,/srv/fonts",
			"FONTREG_RECURSE":   "false",
			"FONTREG_SYSTEM":    "true",
			"FONTREG_LOG_LEVEL": "debug",
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Dirs).To(Equal([]string{"/opt/fonts", "/srv/fonts"}))
		Expect(cfg.Recurse).To(BeFalse())
		Expect(cfg.System).To(BeTrue())
		Expect(cfg.LogLevel).To(Equal(zapcore.DebugLevel))
	})

	It("should reject an unknown log level", func() {
		_, err := config.LoadFrom(map[string]string{"FONTREG_LOG_LEVEL": "loud"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("parse env"))
	})

	It("should reject a malformed boolean", func() {
		_, err := config.LoadFrom(map[string]string{"FONTREG_RECURSE": "maybe"})
		Expect(err).To(HaveOccurred())
	})

	It("should read the process environment", func() {
		old, had := os.LookupEnv("FONTREG_DIRS")
		DeferCleanup(func() {
			if had {
				os.Setenv("FONTREG_DIRS", old)
			} else {
				os.Unsetenv("FONTREG_DIRS")
			}
		})
		os.Setenv("FONTREG_DIRS", "/opt/fonts")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Dirs).To(Equal([]string{"/opt/fonts"}))
	})
})
