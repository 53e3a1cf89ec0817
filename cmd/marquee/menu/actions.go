package menu

import (
	"context"
	"fmt"

	"github.com/agentstation/marquee/internal/cmd/prompt"
	"github.com/agentstation/marquee/internal/cmd/table"
	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
)

func (m *Menu) list(ctx context.Context) error {
	catalog, err := m.client.List(ctx)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		m.yellow.Fprintln(m.out, "No movies found in the database.")
		return nil
	}

	fmt.Fprintf(m.out, "%d movies in total\n", catalog.Len())
	for _, movie := range catalog.Movies() {
		fmt.Fprintf(m.out, "%s: %s released: %d\n", movie.Title, table.FormatRating(movie.Rating), movie.Year)
	}
	return nil
}

func (m *Menu) add(ctx context.Context) error {
	title, err := m.prompt.AskTrimmed(ctx, "Enter the name of the movie you want to add: ")
	if err != nil {
		return err
	}
	if err := catalogs.ValidateTitle(title); err != nil {
		return err
	}
	if _, err := m.client.Get(ctx, title); err == nil {
		return errors.NewAlreadyExistsError("movie", title)
	} else if !errors.IsNotFound(err) {
		return err
	}

	year, err := m.prompt.AskInt(ctx, "Enter the release year of the movie: ", "year")
	if err != nil {
		return err
	}
	rating, err := m.prompt.AskFloat(ctx, "Enter the rating of the movie (1.0 to 10.0): ", "rating")
	if err != nil {
		return err
	}

	movie, err := m.client.Add(ctx, title, year, rating)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "The movie '%s' was added.\n", movie.Title)
	return nil
}

func (m *Menu) delete(ctx context.Context) error {
	title, err := m.prompt.AskTrimmed(ctx, "Enter the movie you want to delete: ")
	if err != nil {
		return err
	}
	movie, err := m.client.Delete(ctx, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "The movie '%s' was deleted.\n", movie.Title)
	return nil
}

func (m *Menu) update(ctx context.Context) error {
	title, err := m.prompt.AskTrimmed(ctx, "Enter the movie you want to update: ")
	if err != nil {
		return err
	}
	current, err := m.client.Get(ctx, title)
	if err != nil {
		return err
	}

	answer, err := m.prompt.Ask(ctx, fmt.Sprintf("Enter the new release year for %s (leave blank to keep %d): ", current.Title, current.Year))
	if err != nil {
		return err
	}
	year, err := prompt.ParseOptionalInt("year", answer)
	if err != nil {
		return err
	}

	answer, err = m.prompt.Ask(ctx, fmt.Sprintf("Enter the new rating for %s (leave blank to keep %s): ", current.Title, table.FormatRating(current.Rating)))
	if err != nil {
		return err
	}
	rating, err := prompt.ParseOptionalFloat("rating", answer)
	if err != nil {
		return err
	}

	u := catalogs.Update{Year: year, Rating: rating}
	if u.IsEmpty() {
		fmt.Fprintf(m.out, "Nothing changed for '%s'.\n", current.Title)
		return nil
	}
	if _, err := m.client.Update(ctx, current.Title, u); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "The movie '%s' was updated.\n", current.Title)
	return nil
}

func (m *Menu) stats(ctx context.Context) error {
	s, err := m.client.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Average rating: %s\n", table.FormatAverage(s.Mean))
	fmt.Fprintf(m.out, "Median rating: %s\n", table.FormatAverage(s.Median))
	fmt.Fprintf(m.out, "The best movie: %s\n", table.FormatTitleRating(s.Best))
	fmt.Fprintf(m.out, "The worst movie: %s\n", table.FormatTitleRating(s.Worst))
	return nil
}

func (m *Menu) random(ctx context.Context) error {
	movie, err := m.client.Random(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Your movie for tonight: %s, it's rated %s. It was released %d\n",
		movie.Title, table.FormatRating(movie.Rating), movie.Year)
	return nil
}

func (m *Menu) search(ctx context.Context) error {
	query, err := m.prompt.AskTrimmed(ctx, "Enter the name of the movie to search: ")
	if err != nil {
		return err
	}
	matches, err := m.client.Search(ctx, query)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		m.red.Fprintln(m.out, "No movies found matching your search.")
		return nil
	}

	m.cyan.Fprintln(m.out, "Matching movies:")
	for _, match := range matches {
		fmt.Fprintf(m.out, "%s: %s released: %d\n", match.Title, table.FormatRating(match.Rating), match.Year)
	}
	return nil
}

func (m *Menu) sort(ctx context.Context) error {
	catalog, err := m.client.List(ctx)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		m.yellow.Fprintln(m.out, "No movies available.")
		return nil
	}

	fmt.Fprintln(m.out, "\nSort movies by:")
	fmt.Fprintln(m.out, "1. Rating (Highest to Lowest)")
	fmt.Fprintln(m.out, "2. Year (Chronological Order)")
	fmt.Fprintln(m.out)

	choice, err := m.prompt.AskTrimmed(ctx, "Enter your choice (1 or 2): ")
	if err != nil {
		return err
	}

	var movies []catalogs.Movie
	switch choice {
	case "1":
		movies, err = m.client.Sorted(ctx, catalogs.ByRating, catalogs.Descending)
	case "2":
		latest, askErr := m.prompt.AskYesNo(ctx, "Show latest movies first? (y/n): ")
		if askErr != nil {
			return askErr
		}
		dir := catalogs.Ascending
		if latest {
			dir = catalogs.Descending
		}
		movies, err = m.client.Sorted(ctx, catalogs.ByYear, dir)
	default:
		m.red.Fprintln(m.out, "Invalid choice. Returning to menu.")
		return nil
	}
	if err != nil {
		return err
	}

	for _, movie := range movies {
		fmt.Fprintf(m.out, "%s: %s (Released: %d)\n", movie.Title, table.FormatRating(movie.Rating), movie.Year)
	}
	return nil
}

func (m *Menu) filter(ctx context.Context) error {
	catalog, err := m.client.List(ctx)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		m.yellow.Fprintln(m.out, "No movies available in the database.")
		return nil
	}

	answer, err := m.prompt.Ask(ctx, "Enter minimum rating (leave blank for no minimum rating): ")
	if err != nil {
		return err
	}
	minRating, err := prompt.ParseOptionalFloat("min_rating", answer)
	if err != nil {
		return err
	}

	answer, err = m.prompt.Ask(ctx, "Enter start year (leave blank for no start year): ")
	if err != nil {
		return err
	}
	startYear, err := prompt.ParseOptionalInt("start_year", answer)
	if err != nil {
		return err
	}

	answer, err = m.prompt.Ask(ctx, "Enter end year (leave blank for no end year): ")
	if err != nil {
		return err
	}
	endYear, err := prompt.ParseOptionalInt("end_year", answer)
	if err != nil {
		return err
	}

	movies, err := m.client.Filter(ctx, catalogs.Filter{MinRating: minRating, StartYear: startYear, EndYear: endYear})
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		m.red.Fprintln(m.out, "No movies match the given criteria.")
		return nil
	}

	m.cyan.Fprintln(m.out, "\nFiltered Movies:")
	for _, movie := range movies {
		fmt.Fprintf(m.out, "%s (%d): %s\n", movie.Title, movie.Year, table.FormatRating(movie.Rating))
	}
	return nil
}
