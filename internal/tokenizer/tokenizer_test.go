package tokenizer

import "testing"

// TestResolveEncodingName verifies model-request normalization: blank
// requests resolve to the default encoding directly while named models are
// lower-cased, trimmed, and routed through the model table.
func TestResolveEncodingName(testingInstance *testing.T) {
	testCases := []struct {
		testName           string
		requestedModel     string
		expectedName       string
		expectedModelTable bool
	}{
		{
			testName:           "empty request selects the default encoding",
			requestedModel:     "",
			expectedName:       DefaultEncodingName,
			expectedModelTable: false,
		},
		{
			testName:           "whitespace request selects the default encoding",
			requestedModel:     "   ",
			expectedName:       DefaultEncodingName,
			expectedModelTable: false,
		},
		{
			testName:           "named model goes through the model table",
			requestedModel:     "gpt-4o",
			expectedName:       "gpt-4o",
			expectedModelTable: true,
		},
		{
			testName:           "model names are lower-cased and trimmed",
			requestedModel:     "  GPT-4  ",
			expectedName:       "gpt-4",
			expectedModelTable: true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		observedName, observedModelTable := ResolveEncodingName(testCase.requestedModel)
		if observedName != testCase.expectedName || observedModelTable != testCase.expectedModelTable {
			testingInstance.Errorf("case %d (%s): expected (%q, %t), got (%q, %t)",
				testCaseIndex, testCase.testName, testCase.expectedName, testCase.expectedModelTable, observedName, observedModelTable)
		}
	}
}

// TestOpenAICounterName verifies the counter reports the encoding it was
// constructed with.
func TestOpenAICounterName(testingInstance *testing.T) {
	counter := openAICounter{name: DefaultEncodingName}
	if counter.Name() != DefaultEncodingName {
		testingInstance.Errorf("expected name %q, got %q", DefaultEncodingName, counter.Name())
	}
}

// TestOpenAICounterNilEncoding verifies counting without a loaded encoder
// fails instead of panicking.
func TestOpenAICounterNilEncoding(testingInstance *testing.T) {
	counter := openAICounter{name: DefaultEncodingName}
	if _, countError := counter.CountString("sample"); countError == nil {
		testingInstance.Error("expected an error from a nil encoder")
	}
}
