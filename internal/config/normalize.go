package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	return c.normalizeProject()
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LibraryRoot = strings.TrimSpace(c.Paths.LibraryRoot); c.Paths.LibraryRoot != "" {
		if c.Paths.LibraryRoot, err = expandPath(c.Paths.LibraryRoot); err != nil {
			return fmt.Errorf("paths.library_root: %w", err)
		}
	}
	if c.Paths.LocalAssetsRoot = strings.TrimSpace(c.Paths.LocalAssetsRoot); c.Paths.LocalAssetsRoot != "" {
		if c.Paths.LocalAssetsRoot, err = expandPath(c.Paths.LocalAssetsRoot); err != nil {
			return fmt.Errorf("paths.local_assets_root: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.ReportDB) == "" {
		c.Paths.ReportDB = defaultReportDB
	}
	if c.Paths.ReportDB, err = expandPath(c.Paths.ReportDB); err != nil {
		return fmt.Errorf("paths.report_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeProject() error {
	c.Project.ID = strings.TrimSpace(c.Project.ID)
	c.Project.Episode = strings.TrimSpace(c.Project.Episode)

	locale := strings.TrimSpace(c.Project.Locale)
	if locale == "" {
		c.Project.Locale = ""
		return nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("project.locale: invalid BCP-47 tag %q: %w", locale, err)
	}
	c.Project.Locale = tag.String()
	return nil
}
