package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"reclaimme/models"
	"reclaimme/utils"
)

// Placeholders returned for document fields the AI reply left out.
const (
	PlaceholderPoliceReportDraft  = "Error: Police report draft not found in AI response."
	PlaceholderBankComplaintEmail = "Error: Bank complaint email not found in AI response."
	PlaceholderNextStepsChecklist = "Error: Next steps checklist not found in AI response."
)

var placeholders = map[string]string{
	models.KeyPoliceReportDraft:  PlaceholderPoliceReportDraft,
	models.KeyBankComplaintEmail: PlaceholderBankComplaintEmail,
	models.KeyNextStepsChecklist: PlaceholderNextStepsChecklist,
}

// Known keys must be strings and at least one of them must be present.
const replySchemaJSON = `{
	"type": "object",
	"properties": {
		"police_report_draft":  {"type": "string"},
		"bank_complaint_email": {"type": "string"},
		"next_steps_checklist": {"type": "string"}
	},
	"anyOf": [
		{"required": ["police_report_draft"]},
		{"required": ["bank_complaint_email"]},
		{"required": ["next_steps_checklist"]}
	]
}`

var replySchema = mustCompileSchema(replySchemaJSON)

func mustCompileSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic("compile reply schema: " + err.Error())
	}
	return schema
}

// ParseDocuments turns the raw AI reply into GeneratedDocuments. It returns
// the keys that were missing and replaced by placeholders.
func ParseDocuments(content string) (*models.GeneratedDocuments, []string, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, nil, utils.NewAIResponseNotJSONError(err)
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, nil, utils.NewAIResponseNotJSONError(errors.New("reply is not a JSON object"))
	}

	result, err := replySchema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return nil, nil, utils.NewAIResponseMissingFieldsError(err.Error())
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, nil, utils.NewAIResponseMissingFieldsError(strings.Join(errs, "; "))
	}

	values := make(map[string]string, len(models.DocumentKeys))
	var missing []string
	for _, key := range models.DocumentKeys {
		if v, ok := obj[key].(string); ok {
			values[key] = v
			continue
		}
		missing = append(missing, key)
		values[key] = placeholders[key]
	}

	docs := &models.GeneratedDocuments{
		PoliceReportDraft:  values[models.KeyPoliceReportDraft],
		BankComplaintEmail: values[models.KeyBankComplaintEmail],
		NextStepsChecklist: values[models.KeyNextStepsChecklist],
	}
	return docs, missing, nil
}
