package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu     list.Model
	recipeList   list.Model
	summaryView  table.Model
	recipeDetail Recipe
	pricing      *PricingResponse
	textInput    textinput.Model
	spinner      spinner.Model
	client       *ApiClient
	currentView  string
	error        string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Recipes", desc: "Browse saved recipes and their costs"},
		item{title: "Dashboard", desc: "Profitability overview across the menu"},
		item{title: "Top Performers", desc: "Best recipes by profit margin"},
		item{title: "Needs Attention", desc: "Recipes flagged for pricing review"},
		item{title: "Exit", desc: "Exit the application"},
	}

	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Food Cost CLI"

	recipeList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recipeList.Title = "Saved Recipes"

	columns := []table.Column{
		{Title: "Metric", Width: 25},
		{Title: "Value", Width: 15},
	}
	summaryTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(6),
	)

	ti := textinput.New()
	ti.Placeholder = "Target margin %..."
	ti.CharLimit = 6
	ti.Width = 20

	return Model{
		mainMenu:    mainMenu,
		recipeList:  recipeList,
		summaryView: summaryTable,
		spinner:     s,
		textInput:   ti,
		client:      NewApiClient(),
		currentView: "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView == "main" {
				return m, tea.Quit
			}
		case "enter":
			if m.currentView == "main" {
				selected, ok := m.mainMenu.SelectedItem().(item)
				if ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Recipes":
						m.currentView = "recipes"
						return m, fetchRecipes(m.client)
					case "Dashboard":
						m.currentView = "dashboard"
						return m, fetchSummary(m.client)
					case "Top Performers":
						m.currentView = "top"
						return m, fetchTop(m.client)
					case "Needs Attention":
						m.currentView = "attention"
						return m, fetchAttention(m.client)
					}
				}
			} else if m.currentView == "recipes" {
				if selected, ok := m.recipeList.SelectedItem().(recipeItem); ok {
					m.currentView = "recipe_detail"
					return m, fetchRecipeDetail(m.client, selected.name)
				}
			} else if m.currentView == "pricing" && m.textInput.Focused() {
				margin, err := strconv.ParseFloat(strings.TrimSpace(m.textInput.Value()), 64)
				if err != nil {
					m.error = "Enter a numeric target margin"
					return m, nil
				}
				return m, simulatePricing(m.client, m.recipeDetail.Name, margin)
			}
		case "esc":
			switch m.currentView {
			case "recipe_detail", "pricing":
				m.currentView = "recipes"
				m.error = ""
				m.pricing = nil
				return m, fetchRecipes(m.client)
			case "main":
			default:
				m.currentView = "main"
				m.error = ""
			}
		case "p":
			if m.currentView == "recipe_detail" {
				m.currentView = "pricing"
				m.pricing = nil
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, nil
			}
		case "d":
			if m.currentView == "recipe_detail" {
				return m, deleteRecipe(m.client, m.recipeDetail.Name)
			}
		}
	case recipesMsg:
		m.recipeList.SetItems(convertRecipesToItems(msg.recipes))
		return m, nil
	case recipeDetailMsg:
		m.recipeDetail = msg.recipe
		return m, nil
	case summaryMsg:
		m.summaryView.SetRows(summaryRows(msg.summary))
		return m, nil
	case performanceMsg:
		m.recipeList.SetItems(convertPerformanceToItems(msg.rows, msg.view))
		m.recipeList.Title = msg.title
		return m, nil
	case pricingMsg:
		m.pricing = msg.pricing
		m.error = ""
		return m, nil
	case errorMsg:
		m.error = msg.err
		return m, nil
	case confirmMsg:
		m.error = ""
		m.currentView = "recipes"
		return m, fetchRecipes(m.client)
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "recipes", "top", "attention":
		m.recipeList, cmd = m.recipeList.Update(msg)
	case "dashboard":
		m.summaryView, cmd = m.summaryView.Update(msg)
	case "pricing":
		m.textInput, cmd = m.textInput.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "recipes", "top", "attention":
		help := "\nPress 'enter' to view details, 'esc' to go back\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(m.recipeList.View() + help)
	case "recipe_detail":
		return docStyle.Render(recipeDetailView(m.recipeDetail))
	case "dashboard":
		return docStyle.Render(titleStyle.Render("Dashboard") + "\n\n" + m.summaryView.View() + "\n\nPress 'esc' to go back")
	case "pricing":
		view := titleStyle.Render("Pricing Simulator") + "\n\n"
		view += infoStyle.Render(m.recipeDetail.Name) + "\n\n"
		view += m.textInput.View() + "\n"
		view += "\nEnter a target profit margin and press 'enter'. 'esc' to go back.\n"
		if m.pricing != nil {
			view += "\n" + successStyle.Render(fmt.Sprintf(
				"Recommended price: %s (%s market)",
				m.pricing.Display["recommendedPrice"],
				m.pricing.Recommendation.Market,
			)) + "\n"
		}
		if m.error != "" {
			view += "\n" + errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(view)
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type recipesMsg struct {
	recipes []Recipe
}

type recipeDetailMsg struct {
	recipe Recipe
}

type summaryMsg struct {
	summary *SummaryResponse
}

type performanceMsg struct {
	rows  []RecipePerformance
	view  string
	title string
}

type pricingMsg struct {
	pricing *PricingResponse
}

type errorMsg struct {
	err string
}

type confirmMsg struct {
	message string
}

// recipeItem represents a recipe in the list
type recipeItem struct {
	name  string
	title string
	desc  string
}

func (i recipeItem) Title() string       { return i.title }
func (i recipeItem) Description() string { return i.desc }
func (i recipeItem) FilterValue() string { return i.title }

// fetchRecipes retrieves all recipes from the API
func fetchRecipes(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		recipes, err := client.GetRecipes()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching recipes: %v", err)}
		}
		return recipesMsg{recipes: recipes}
	}
}

// fetchRecipeDetail retrieves one recipe by name
func fetchRecipeDetail(client *ApiClient, name string) tea.Cmd {
	return func() tea.Msg {
		recipe, err := client.GetRecipe(name)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching recipe: %v", err)}
		}
		return recipeDetailMsg{recipe: *recipe}
	}
}

// fetchSummary retrieves the dashboard overview
func fetchSummary(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		summary, err := client.GetSummary()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching summary: %v", err)}
		}
		return summaryMsg{summary: summary}
	}
}

// fetchTop retrieves the best performers
func fetchTop(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		rows, err := client.GetTopRecipes()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching top recipes: %v", err)}
		}
		return performanceMsg{rows: rows, view: "top", title: "Top Performers"}
	}
}

// fetchAttention retrieves the flagged recipes
func fetchAttention(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		rows, err := client.GetAttentionRecipes()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching flagged recipes: %v", err)}
		}
		return performanceMsg{rows: rows, view: "attention", title: "Needs Attention"}
	}
}

// simulatePricing asks the API for a recommended price
func simulatePricing(client *ApiClient, recipe string, targetMargin float64) tea.Cmd {
	return func() tea.Msg {
		pricing, err := client.SimulatePricing(recipe, targetMargin)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error simulating pricing: %v", err)}
		}
		return pricingMsg{pricing: pricing}
	}
}

// deleteRecipe removes a recipe
func deleteRecipe(client *ApiClient, name string) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteRecipe(name); err != nil {
			return errorMsg{err: fmt.Sprintf("Error deleting recipe: %v", err)}
		}
		return confirmMsg{message: "Recipe deleted"}
	}
}

// convertRecipesToItems converts API recipes to list items
func convertRecipesToItems(recipes []Recipe) []list.Item {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		items[i] = recipeItem{
			name:  r.Name,
			title: r.Name,
			desc: fmt.Sprintf("%d ingredients - %d servings - total cost %.2f",
				len(r.Ingredients), r.Servings, r.TotalCost),
		}
	}
	return items
}

// convertPerformanceToItems converts dashboard rows to list items
func convertPerformanceToItems(rows []RecipePerformance, view string) []list.Item {
	items := make([]list.Item, len(rows))
	for i, row := range rows {
		desc := fmt.Sprintf("Margin: %.1f%% - Food cost: %.1f%% - %s",
			row.Metrics.ProfitMargin, row.Metrics.FoodCostPct, row.Potential)
		if view == "attention" && row.Flag != nil {
			desc = fmt.Sprintf("%s (%s impact) - %s", row.Flag.Issue, row.Flag.Impact, row.Flag.Action)
		}
		items[i] = recipeItem{
			name:  row.Recipe.Name,
			title: row.Recipe.Name,
			desc:  desc,
		}
	}
	return items
}

// summaryRows builds the dashboard table rows
func summaryRows(s *SummaryResponse) []table.Row {
	if !s.HasData {
		return []table.Row{{"Recipes", "0"}, {"", "No data yet"}}
	}
	return []table.Row{
		{"Recipes", strconv.Itoa(s.Summary.TotalRecipes)},
		{"Avg. profit margin", s.Display["averageProfitMargin"]},
		{"Avg. food cost", s.Display["averageFoodCost"]},
		{"Avg. selling price", s.Display["averageSellingPrice"]},
	}
}

// recipeDetailView creates a detailed view of a recipe
func recipeDetailView(r Recipe) string {
	view := titleStyle.Render(r.Name) + "\n\n"
	view += fmt.Sprintf("Servings: %d\n", r.Servings)
	view += fmt.Sprintf("Selling price: %.2f\n", r.SellingPrice)
	view += fmt.Sprintf("Labor cost: %.2f\n", r.LaborCost)
	view += fmt.Sprintf("Total cost: %.2f\n", r.TotalCost)
	if !r.LastModified.IsZero() {
		view += fmt.Sprintf("Last modified: %s\n", r.LastModified.Format(time.RFC1123))
	}

	view += "\nIngredients:\n"
	if len(r.Ingredients) == 0 {
		view += "No ingredients recorded\n"
	}
	for i, ing := range r.Ingredients {
		view += fmt.Sprintf("%d. %s (%.2f %s) - %.2f each\n", i+1, ing.Name, ing.Quantity, ing.Unit, ing.Cost)
	}

	view += "\nPress 'p' for the pricing simulator, 'd' to delete, 'esc' to go back"

	return view
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
