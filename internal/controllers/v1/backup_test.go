package v1_test

import (
	"fmt"
	"net/http"
)

func (suite *TestSuiteStandard) TestGetBackup() {
	suite.createCategory("2024-06", "Groceries", "15000")

	recorder := suite.request(http.MethodGet, "/v1/backup", "")
	suite.assertHTTPStatus(recorder, http.StatusOK)

	suite.Assert().Equal("application/json", recorder.Header().Get("Content-Type"))
	suite.Assert().Contains(recorder.Header().Get("Content-Disposition"), "expense-tracker-backup-2024-06-15.json")
	suite.Assert().Contains(recorder.Body.String(), "Groceries")
}

func (suite *TestSuiteStandard) TestRestoreBackupRequiresConfirm() {
	recorder := suite.request(http.MethodPost, "/v1/backup", `{"schemaVersion": 1, "months": {}, "savings": {}}`)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodPost, "/v1/backup?confirm=yes", `{"schemaVersion": 1, "months": {}, "savings": {}}`)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRestoreBackupInvalidDocument() {
	for _, body := range []string{
		"not json",
		`{"schemaVersion": 2, "months": {}, "savings": {}}`,
		`{"schemaVersion": 1, "months": [], "savings": {}}`,
	} {
		recorder := suite.request(http.MethodPost, "/v1/backup?confirm=true", body)
		suite.assertHTTPStatus(recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestBackupRoundTrip() {
	category := suite.createCategory("2024-06", "Groceries", "15000")
	suite.request(http.MethodPost, "/v1/months/2024-06/expenses",
		fmt.Sprintf(`{"categoryId": %q, "amount": "799", "comment": "milk"}`, category.Data.ID))

	exported := suite.request(http.MethodGet, "/v1/backup", "")
	suite.assertHTTPStatus(exported, http.StatusOK)

	// Wipe everything, then restore.
	recorder := suite.request(http.MethodDelete, "/v1/months/2024-06/categories/"+category.Data.ID, "")
	suite.assertHTTPStatus(recorder, http.StatusNoContent)
	suite.Assert().Empty(suite.getMonth("2024-06").Data.Categories)

	recorder = suite.request(http.MethodPost, "/v1/backup?confirm=true", exported.Body.String())
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	month := suite.getMonth("2024-06")
	suite.Require().Len(month.Data.Categories, 1)
	suite.Assert().Equal("Groceries", month.Data.Categories[0].Name)
	suite.Require().Len(month.Data.Expenses, 1)
	suite.Assert().Equal("milk", month.Data.Expenses[0].Comment)
}
