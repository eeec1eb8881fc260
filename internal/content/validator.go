package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks content records for authoring errors.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a Validator with English messages.
func NewValidator() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	validate.RegisterStructValidation(validateQuestion, Question{})
	validate.RegisterStructValidation(validateEditorial, Editorial{})
	validate.RegisterStructValidation(validateAchievement, Achievement{})

	translations := map[string]string{
		"answer_in_range": "{0} must index one of the options",
		"unique_term":     "{0} repeats a vocabulary term already used in this editorial",
		"within_target":   "{0} must not exceed the target",
	}
	for tag, text := range translations {
		if err := registerTranslation(validate, trans, tag, text); err != nil {
			return nil, err
		}
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, text, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, fe.Field())
		return t
	}); err != nil {
		return fmt.Errorf("failed to register %s translation: %w", tag, err)
	}
	return nil
}

func validateQuestion(sl validator.StructLevel) {
	q := sl.Current().Interface().(Question)
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		sl.ReportError(q.CorrectAnswer, "correct_answer", "CorrectAnswer", "answer_in_range", "")
	}
}

// Terms are compared case-folded, the same way the reader matches tokens.
func validateEditorial(sl validator.StructLevel) {
	e := sl.Current().Interface().(Editorial)
	seen := make(map[string]struct{}, len(e.Vocabulary))
	for i, word := range e.Vocabulary {
		term := strings.ToLower(strings.TrimSpace(word.Word))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			sl.ReportError(word.Word, fmt.Sprintf("vocabulary[%d].word", i), "Vocabulary", "unique_term", "")
			continue
		}
		seen[term] = struct{}{}
	}
}

func validateAchievement(sl validator.StructLevel) {
	a := sl.Current().Interface().(Achievement)
	if a.Target > 0 && a.Progress > a.Target {
		sl.ReportError(a.Progress, "progress", "Progress", "within_target", "")
	}
}

// Dataset validates every record in the dataset.
func (v *Validator) Dataset(dataset Dataset) error {
	return v.check(dataset)
}

// Editorial validates a single editorial and its quiz.
func (v *Validator) Editorial(editorial Editorial) error {
	return v.check(editorial)
}

func (v *Validator) check(target any) error {
	err := v.validate.Struct(target)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct() > %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", trimRootNamespace(e.Namespace()), e.Translate(v.translator)))
	}
	return fmt.Errorf("invalid content: %s", strings.Join(messages, ", "))
}

func trimRootNamespace(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
