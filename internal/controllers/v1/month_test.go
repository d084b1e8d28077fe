package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/spendbook/backend/internal/controllers/v1"
)

// createCategory is a test helper adding a category to a month.
func (suite *TestSuiteStandard) createCategory(month, name, planned string) v1.CategoryResponse {
	recorder := suite.request(http.MethodPost, fmt.Sprintf("/v1/months/%s/categories", month),
		fmt.Sprintf(`{"name": %q, "planned": %q}`, name, planned))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.CategoryResponse
	suite.decode(recorder, &response)
	return response
}

// getMonth is a test helper fetching a month.
func (suite *TestSuiteStandard) getMonth(month string) v1.MonthResponse {
	recorder := suite.request(http.MethodGet, "/v1/months/"+month, "")
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.MonthResponse
	suite.decode(recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestGetMonth() {
	response := suite.getMonth("2024-06")

	suite.Assert().Equal("2024-06", response.Data.Key.String())
	suite.Assert().Equal("June 2024", response.Data.Title)
	suite.Assert().Equal("0", response.Data.Balance.String())
	suite.Assert().NotEmpty(response.Data.BalanceDisplay)
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestGetMonthInvalidKey() {
	for _, path := range []string{"/v1/months/2024-6", "/v1/months/junk", "/v1/months/2024-13"} {
		recorder := suite.request(http.MethodGet, path, "")
		suite.assertHTTPStatus(recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestUpdateBudgetPlan() {
	recorder := suite.request(http.MethodPatch, "/v1/months/2024-06/budget", `{"amount": "50000"}`)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.MonthResponse
	suite.decode(recorder, &response)
	suite.Assert().Equal("50000", response.Data.BudgetPlan.String())
	suite.Assert().Equal("50000", response.Data.Balance.String())
}

func (suite *TestSuiteStandard) TestUpdateBudgetPlanInvalid() {
	recorder := suite.request(http.MethodPatch, "/v1/months/2024-06/budget", `{"amount": "not money"}`)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodPatch, "/v1/months/2024-06/budget", "")
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudgetPlanAcceptsCommaSeparator() {
	recorder := suite.request(http.MethodPatch, "/v1/months/2024-06/budget", `{"amount": "50000,50"}`)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.MonthResponse
	suite.decode(recorder, &response)
	suite.Assert().Equal("50000.5", response.Data.BudgetPlan.String())
}

func (suite *TestSuiteStandard) TestGetMonthRollsOver() {
	suite.request(http.MethodPatch, "/v1/months/2024-06/budget", `{"amount": "50000"}`)
	groceries := suite.createCategory("2024-06", "Groceries", "15000")
	suite.createCategory("2024-06", "Transport", "3000")

	response := suite.getMonth("2024-07")

	suite.Assert().Equal("50000", response.Data.BudgetPlan.String())
	suite.Require().Len(response.Data.Categories, 2)
	suite.Assert().Equal("Transport", response.Data.Categories[0].Name)
	suite.Assert().Equal("Groceries", response.Data.Categories[1].Name)
	suite.Assert().Empty(response.Data.Expenses)
	suite.Assert().Empty(response.Data.Incomes)

	for _, category := range response.Data.Categories {
		suite.Assert().NotEqual(groceries.Data.ID, category.ID)
		suite.Assert().Equal("0", category.Spent.String())
	}

	// June is untouched by the rollover.
	june := suite.getMonth("2024-06")
	suite.Require().Len(june.Data.Categories, 2)
	suite.Assert().Contains([]string{june.Data.Categories[0].ID, june.Data.Categories[1].ID}, groceries.Data.ID)
}

func (suite *TestSuiteStandard) TestGetMonthSkipsEmptyPredecessor() {
	suite.request(http.MethodPatch, "/v1/months/2024-06/budget", `{"amount": "50000"}`)

	response := suite.getMonth("2024-07")
	suite.Assert().Equal("0", response.Data.BudgetPlan.String())
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestMonthComputedValues() {
	category := suite.createCategory("2024-06", "Groceries", "15000")

	recorder := suite.request(http.MethodPost, "/v1/months/2024-06/expenses",
		fmt.Sprintf(`{"categoryId": %q, "amount": "799", "date": "2024-06-12"}`, category.Data.ID))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	response := suite.getMonth("2024-06")
	suite.Assert().Equal("799", response.Data.ExpenseTotal.String())
	suite.Assert().Equal("-799", response.Data.Balance.String())

	suite.Require().Len(response.Data.Categories, 1)
	suite.Assert().Equal("799", response.Data.Categories[0].Spent.String())
	suite.Assert().Equal("14201", response.Data.Categories[0].Remaining.String())
}
