package usecase

import (
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultCourseFallback = "https://urbancode.in/courses"

var defaultCourseLinks = map[string]string{
	"Data Science":          "https://urbancode.in/data-science",
	"Data Analysis":         "https://urbancode.in/data-analysis",
	"Database":              "https://urbancode.in/database",
	"Data Analytics":        "https://urbancode.in/data-analytics",
	"Cloud and DevOps":      "https://urbancode.in/cloud-and-devops",
	"Programming Languages": "https://urbancode.in/programming-languages",
	"Software Testing":      "https://urbancode.in/software-testing",
	"Kids":                  "https://urbancode.in/kids",
	"Internship":            "https://urbancode.in/internship",
	"Other":                 "https://urbancode.in/courses",
	"Digital Marketing":     "https://urbancode.in/digital-marketing",
}

// CourseCatalog maps the course names offered by the chatbot to their
// landing pages. It is read-only once built.
type CourseCatalog struct {
	links    map[string]string
	fallback string
}

type courseCatalogFile struct {
	Fallback string            `yaml:"fallback"`
	Courses  map[string]string `yaml:"courses"`
}

func NewCourseCatalog(links map[string]string, fallback string) *CourseCatalog {
	c := &CourseCatalog{
		links:    make(map[string]string, len(links)),
		fallback: fallback,
	}
	for name, url := range links {
		c.links[name] = url
	}
	if c.fallback == "" {
		c.fallback = DefaultCourseFallback
	}
	return c
}

func DefaultCourseCatalog() *CourseCatalog {
	return NewCourseCatalog(defaultCourseLinks, DefaultCourseFallback)
}

// LoadCourseCatalog layers the YAML file at path over the built-in table.
// An empty path returns the built-in table.
func LoadCourseCatalog(path string) (*CourseCatalog, error) {
	if path == "" {
		return DefaultCourseCatalog(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &TechnicalError{Code: "CATALOG_READ_ERROR", Message: "read course catalog", Err: err}
	}

	var file courseCatalogFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, &TechnicalError{Code: "CATALOG_PARSE_ERROR", Message: "parse course catalog", Err: err}
	}

	links := make(map[string]string, len(defaultCourseLinks)+len(file.Courses))
	for name, url := range defaultCourseLinks {
		links[name] = url
	}
	for name, url := range file.Courses {
		links[name] = url
	}

	return NewCourseCatalog(links, file.Fallback), nil
}

func (c *CourseCatalog) Link(course string) string {
	if url, ok := c.links[course]; ok {
		return url
	}
	return c.fallback
}

func (c *CourseCatalog) Len() int {
	return len(c.links)
}
