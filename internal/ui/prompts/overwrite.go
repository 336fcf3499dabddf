package prompts

import (
	"github.com/AlecAivazis/survey/v2"
)

// surveyIcons matches the survey prompts to the cyan titles used elsewhere.
func surveyIcons() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
		icons.Question.Format = "cyan+b"
		icons.Error.Text = "x"
	})
}

// ConfirmOverwrite asks before replacing an existing output file.
func ConfirmOverwrite(path string) (bool, error) {
	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "File " + path + " exists. Overwrite it?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, surveyIcons()); err != nil {
		return false, err
	}
	return confirmation, nil
}
