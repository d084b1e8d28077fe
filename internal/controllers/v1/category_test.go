package v1_test

import (
	"fmt"
	"net/http"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	response := suite.createCategory("2024-06", "Groceries", "15000")

	suite.Assert().Equal("Groceries", response.Data.Name)
	suite.Assert().Equal("15000", response.Data.Planned.String())
	suite.Assert().NotEmpty(response.Data.ID)
}

func (suite *TestSuiteStandard) TestCreateCategoryDefaultsPlanned() {
	recorder := suite.request(http.MethodPost, "/v1/months/2024-06/categories", `{"name": "Misc"}`)
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	month := suite.getMonth("2024-06")
	suite.Require().Len(month.Data.Categories, 1)
	suite.Assert().Equal("0", month.Data.Categories[0].Planned.String())
}

func (suite *TestSuiteStandard) TestCreateCategoryEmptyName() {
	for _, body := range []string{`{"name": ""}`, `{"name": "   "}`, `{"planned": "100"}`} {
		recorder := suite.request(http.MethodPost, "/v1/months/2024-06/categories", body)
		suite.assertHTTPStatus(recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	category := suite.createCategory("2024-06", "Groceries", "15000")

	recorder := suite.request(http.MethodPatch, "/v1/months/2024-06/categories/"+category.Data.ID,
		`{"name": "Food", "planned": "16000"}`)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	month := suite.getMonth("2024-06")
	suite.Require().Len(month.Data.Categories, 1)
	suite.Assert().Equal("Food", month.Data.Categories[0].Name)
	suite.Assert().Equal("16000", month.Data.Categories[0].Planned.String())
}

func (suite *TestSuiteStandard) TestUpdateCategoryDefaultsPlanned() {
	category := suite.createCategory("2024-06", "Groceries", "15000")

	recorder := suite.request(http.MethodPatch, "/v1/months/2024-06/categories/"+category.Data.ID,
		`{"name": "Food"}`)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	month := suite.getMonth("2024-06")
	suite.Require().Len(month.Data.Categories, 1)
	suite.Assert().Equal("Food", month.Data.Categories[0].Name)
	suite.Assert().Equal("0", month.Data.Categories[0].Planned.String())
}

func (suite *TestSuiteStandard) TestUpdateCategoryUnknownID() {
	suite.createCategory("2024-06", "Groceries", "15000")

	recorder := suite.request(http.MethodPatch, "/v1/months/2024-06/categories/does-not-exist",
		`{"name": "Food", "planned": "16000"}`)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	month := suite.getMonth("2024-06")
	suite.Assert().Equal("Groceries", month.Data.Categories[0].Name)
}

func (suite *TestSuiteStandard) TestDeleteCategoryCascades() {
	category := suite.createCategory("2024-06", "Groceries", "15000")
	keep := suite.createCategory("2024-06", "Transport", "3000")

	recorder := suite.request(http.MethodPost, "/v1/months/2024-06/expenses",
		fmt.Sprintf(`{"categoryId": %q, "amount": "799"}`, category.Data.ID))
	suite.assertHTTPStatus(recorder, http.StatusCreated)
	recorder = suite.request(http.MethodPost, "/v1/months/2024-06/expenses",
		fmt.Sprintf(`{"categoryId": %q, "amount": "120"}`, keep.Data.ID))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	recorder = suite.request(http.MethodDelete, "/v1/months/2024-06/categories/"+category.Data.ID, "")
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	month := suite.getMonth("2024-06")
	suite.Require().Len(month.Data.Categories, 1)
	suite.Assert().Equal("Transport", month.Data.Categories[0].Name)
	suite.Require().Len(month.Data.Expenses, 1)
	suite.Assert().Equal(keep.Data.ID, month.Data.Expenses[0].CategoryID)
}
