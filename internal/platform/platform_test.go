package platform_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logandonley/font-engine/internal/platform"
)

var _ = Describe("Platform", func() {
	var (
		tempDir string
		oldHome string
		locator platform.Locator
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "platform-test-*")
		Expect(err).NotTo(HaveOccurred())

		oldHome = os.Getenv("HOME")
		os.Setenv("HOME", tempDir)
	})

	AfterEach(func() {
		os.Setenv("HOME", oldHome)
		os.RemoveAll(tempDir)
	})

	Context("Linux Locator", func() {
		BeforeEach(func() {
			locator = platform.ForOS("linux")
		})

		It("should return correct font paths", func() {
			paths, err := locator.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			Expect(paths.SystemDirs).To(ContainElement("/usr/local/share/fonts"))
			Expect(paths.UserDir).To(HavePrefix(tempDir))
			Expect(paths.UserDir).To(ContainSubstring(".local/share/fonts"))
		})

		It("should not create the user directory", func() {
			paths, err := locator.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			_, err = os.Stat(paths.UserDir)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})

	Context("Darwin Locator", func() {
		BeforeEach(func() {
			locator = platform.ForOS("darwin")
		})

		It("should return correct font paths", func() {
			paths, err := locator.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			Expect(paths.SystemDirs).To(ContainElement("/Library/Fonts"))
			Expect(paths.UserDir).To(ContainSubstring("Library/Fonts"))
		})
	})

	Context("Listing every directory", func() {
		It("should put the user directory last", func() {
			paths := platform.FontPaths{
				SystemDirs: []string{"/a", "/b"},
				UserDir:    "/home/u/fonts",
			}
			Expect(paths.All()).To(Equal([]string{"/a", "/b", "/home/u/fonts"}))
		})

		It("should skip an empty user directory", func() {
			paths := platform.FontPaths{SystemDirs: []string{"/a"}}
			Expect(paths.All()).To(Equal([]string{"/a"}))
		})
	})
})
