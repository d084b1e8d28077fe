package v1_test

import (
	"net/http"

	v1 "github.com/spendbook/backend/internal/controllers/v1"
)

func (suite *TestSuiteStandard) TestCreateIncome() {
	recorder := suite.request(http.MethodPost, "/v1/months/2024-06/incomes", `{"amount": "5000", "comment": "bonus"}`)
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.IncomeResponse
	suite.decode(recorder, &response)
	suite.Assert().Equal("5000", response.Data.Amount.String())
	suite.Assert().Equal("bonus", response.Data.Comment)
	// Date defaults to the pinned current date.
	suite.Assert().Equal("2024-06-15", response.Data.Date.String())
	suite.Assert().NotEmpty(response.Data.ID)

	month := suite.getMonth("2024-06")
	suite.Assert().Equal("5000", month.Data.IncomeTotal.String())
	suite.Assert().Equal("5000", month.Data.Balance.String())
}

func (suite *TestSuiteStandard) TestCreateIncomeInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"missing amount", `{"comment": "bonus"}`},
		{"zero amount", `{"amount": "0"}`},
		{"negative amount", `{"amount": "-100"}`},
		{"unparsable amount", `{"amount": "one hundred"}`},
		{"bad date", `{"amount": "100", "date": "June 1st"}`},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodPost, "/v1/months/2024-06/incomes", tt.body)
		suite.assertHTTPStatus(recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	recorder := suite.request(http.MethodPost, "/v1/months/2024-06/incomes", `{"amount": "5000"}`)
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.IncomeResponse
	suite.decode(recorder, &response)

	recorder = suite.request(http.MethodDelete, "/v1/months/2024-06/incomes/"+response.Data.ID, "")
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	month := suite.getMonth("2024-06")
	suite.Assert().Empty(month.Data.Incomes)
}

func (suite *TestSuiteStandard) TestDeleteIncomeUnknownID() {
	recorder := suite.request(http.MethodDelete, "/v1/months/2024-06/incomes/does-not-exist", "")
	suite.assertHTTPStatus(recorder, http.StatusNoContent)
}
