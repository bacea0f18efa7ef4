// Package content holds the static course text: the course map and the
// section pages with the exercises each one hosts.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/stratiz/internal/course"
)

//go:embed content.yaml
var contentYAML []byte

// Page-only exercises that have no evaluator topic.
const (
	ExerciseGroups = "groups"
	ExerciseStory  = "story"
)

// Card is a titled roadmap card.
type Card struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// CourseMap is the welcome page content.
type CourseMap struct {
	Title        string   `yaml:"title"`
	Intro        string   `yaml:"intro"`
	BigQuestions []string `yaml:"big_questions"`
	HowToUse     []string `yaml:"how_to_use"`
	Roadmap      []Card   `yaml:"roadmap"`
}

// Exercise is one numbered block on a section page.
type Exercise struct {
	Topic   string `yaml:"topic"`
	Heading string `yaml:"heading"`
}

// Section is one content page.
type Section struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Intro       string         `yaml:"intro"`
	Exercises   []Exercise     `yaml:"exercises"`
	QuizHeading string         `yaml:"quiz_heading"`
	QuizTopics  []course.Topic `yaml:"quiz_topics"`
}

// Course is the whole document.
type Course struct {
	Map      CourseMap `yaml:"course_map"`
	Sections []Section `yaml:"sections"`
}

// Parse decodes and validates course content.
func Parse(data []byte) (*Course, error) {
	var c Course
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse course content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

var (
	defaultOnce   sync.Once
	defaultCourse *Course
)

// Default returns the embedded course content. It panics if the embedded
// file is invalid.
func Default() *Course {
	defaultOnce.Do(func() {
		c, err := Parse(contentYAML)
		if err != nil {
			panic(err)
		}
		defaultCourse = c
	})
	return defaultCourse
}

// Validate checks section IDs are unique and every exercise and quiz topic
// is known.
func (c *Course) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for _, s := range c.Sections {
		if s.ID == "" || s.Title == "" {
			errs = append(errs, fmt.Errorf("section %q: id and title are required", s.ID))
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("section %q: duplicate id", s.ID))
		}
		seen[s.ID] = true
		for _, e := range s.Exercises {
			if e.Topic == ExerciseGroups || e.Topic == ExerciseStory {
				continue
			}
			if _, err := course.ParseTopic(e.Topic); err != nil {
				errs = append(errs, fmt.Errorf("section %q: %w", s.ID, err))
			}
		}
		for _, t := range s.QuizTopics {
			if _, err := course.ParseTopic(string(t)); err != nil {
				errs = append(errs, fmt.Errorf("section %q quiz: %w", s.ID, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Section returns the section with the given ID.
func (c *Course) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
