// La consola administrativa de la biblioteca: cliente de línea de comandos
// sobre el backend REST (login/estado/CRUD de libros, categorías, usuarios y
// préstamos, dashboard y subida de archivos).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/tu-usuario/biblioteca-admin/internal/application/auth"
	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/application/usecase"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
	"github.com/tu-usuario/biblioteca-admin/pkg/config"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
	"github.com/tu-usuario/biblioteca-admin/pkg/validation"
)

const usageText = `uso: console <comando> [flags]

comandos:
  login -email <email> -password <secreto>   iniciar sesión
  logout                                     cerrar sesión
  status                                     estado de la sesión local
  dashboard                                  métricas agregadas
  books     list | get | create | update | delete
  categories list | create | delete
  users     list | create | delete           (solo admin)
  borrows   list | create | return
  upload    -file <ruta>                     subir portada/avatar
`

// app agrupa los servicios ya cableados de la consola.
type app struct {
	session    *auth.Service
	books      *usecase.BookUseCase
	categories *usecase.CategoryUseCase
	users      *usecase.UserUseCase
	borrows    *usecase.BorrowUseCase
	dashboard  *usecase.DashboardUseCase
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("cargar configuración: %v", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	storePath, err := cfg.Store.StorePath()
	if err != nil {
		fatal("%v", err)
	}
	store, err := localstore.NewFileStore(storePath)
	if err != nil {
		fatal("abrir almacén local: %v", err)
	}

	roles := auth.NewResolver(cfg.Auth.BootstrapAdminEmail)
	creds := localstore.NewCredentials(store, roles.DefaultRoleFor, log)
	session := auth.NewService(creds, roles, cfg.API.BaseURL, nil, log)
	headers := auth.NewHeaderBuilder(creds, roles)
	api := rest.New(cfg.API.BaseURL, headers, nil, "es", log)
	val := validation.New()

	a := &app{
		session:    session,
		books:      usecase.NewBookUseCase(api, val),
		categories: usecase.NewCategoryUseCase(api, val),
		users:      usecase.NewUserUseCase(api, val),
		borrows:    usecase.NewBorrowUseCase(api, val),
		dashboard:  usecase.NewDashboardUseCase(api),
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fatal("%v", err)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		a.session.Logout()
		fmt.Println("sesión cerrada; use 'console login' para volver a entrar")
		return nil
	case "status":
		return a.cmdStatus()
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "books":
		return a.cmdBooks(ctx, args)
	case "categories":
		return a.cmdCategories(ctx, args)
	case "users":
		return a.cmdUsers(ctx, args)
	case "borrows":
		return a.cmdBorrows(ctx, args)
	case "upload":
		return a.cmdUpload(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("comando desconocido: %s", cmd)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email del usuario")
	password := fs.String("password", "", "contraseña")
	_ = fs.Parse(args)

	profile, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("bienvenido %s (%s)\n", profile.Name, profile.Role)
	return nil
}

func (a *app) cmdStatus() error {
	view := a.session.CheckStatus()
	if !view.IsAuthenticated {
		fmt.Println("sin sesión; use 'console login'")
		return nil
	}
	u := view.CurrentUser
	fmt.Printf("sesión activa: %s <%s> rol=%s\n", u.Name, u.Email, u.Role)
	return nil
}

func (a *app) cmdDashboard(ctx context.Context) error {
	s, err := a.dashboard.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("libros=%d categorías=%d usuarios=%d préstamos activos=%d vencidos=%d\n",
		s.Books, s.Categories, s.Users, s.ActiveBorrows, s.OverdueBorrows)
	return nil
}

func (a *app) cmdBooks(ctx context.Context, args []string) error {
	sub, tail := subcommand(args)
	switch sub {
	case "list":
		books, total, err := a.books.List(ctx, dto.PageRequest{})
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tTÍTULO\tAUTOR\tDISPONIBLES")
		for _, b := range books {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\n", b.ID, b.Title, b.Author, b.CopiesAvailable, b.CopiesTotal)
		}
		w.Flush()
		fmt.Printf("total: %d\n", total)
		return nil
	case "get":
		fs := flag.NewFlagSet("books get", flag.ExitOnError)
		id := fs.String("id", "", "id del libro")
		_ = fs.Parse(tail)
		b, err := a.books.Get(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("%s - %s (%s), ejemplares %d/%d\n", b.Title, b.Author, b.ISBN, b.CopiesAvailable, b.CopiesTotal)
		return nil
	case "create":
		fs := flag.NewFlagSet("books create", flag.ExitOnError)
		title := fs.String("title", "", "título")
		author := fs.String("author", "", "autor")
		isbn := fs.String("isbn", "", "ISBN")
		category := fs.String("category", "", "id de categoría")
		copies := fs.Int("copies", 1, "número de ejemplares")
		_ = fs.Parse(tail)
		b, err := a.books.Create(ctx, dto.CreateBookRequest{
			Title: *title, Author: *author, ISBN: *isbn, CategoryID: *category, CopiesTotal: *copies,
		})
		if err != nil {
			return err
		}
		fmt.Printf("libro creado: %s\n", b.ID)
		return nil
	case "update":
		fs := flag.NewFlagSet("books update", flag.ExitOnError)
		id := fs.String("id", "", "id del libro")
		title := fs.String("title", "", "título")
		author := fs.String("author", "", "autor")
		copies := fs.Int("copies", 0, "número de ejemplares")
		_ = fs.Parse(tail)
		b, err := a.books.Update(ctx, *id, dto.UpdateBookRequest{
			Title: *title, Author: *author, CopiesTotal: *copies,
		})
		if err != nil {
			return err
		}
		fmt.Printf("libro actualizado: %s\n", b.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("books delete", flag.ExitOnError)
		id := fs.String("id", "", "id del libro")
		_ = fs.Parse(tail)
		if err := a.books.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Println("libro eliminado")
		return nil
	default:
		return fmt.Errorf("books: subcomando desconocido %q", sub)
	}
}

func (a *app) cmdCategories(ctx context.Context, args []string) error {
	sub, tail := subcommand(args)
	switch sub {
	case "list":
		cats, total, err := a.categories.List(ctx, dto.PageRequest{})
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tESTADO")
		for _, c := range cats {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Status)
		}
		w.Flush()
		fmt.Printf("total: %d\n", total)
		return nil
	case "create":
		fs := flag.NewFlagSet("categories create", flag.ExitOnError)
		name := fs.String("name", "", "nombre")
		desc := fs.String("description", "", "descripción")
		_ = fs.Parse(tail)
		c, err := a.categories.Create(ctx, dto.CreateCategoryRequest{Name: *name, Description: *desc})
		if err != nil {
			return err
		}
		fmt.Printf("categoría creada: %s\n", c.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("categories delete", flag.ExitOnError)
		id := fs.String("id", "", "id de la categoría")
		_ = fs.Parse(tail)
		if err := a.categories.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Println("categoría eliminada")
		return nil
	default:
		return fmt.Errorf("categories: subcomando desconocido %q", sub)
	}
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	// Guardia de navegación: la pantalla de usuarios es solo admin. El
	// servidor vuelve a verificar de todos modos.
	if !a.session.HasRole(entity.RoleAdmin) {
		return fmt.Errorf("la gestión de usuarios requiere rol admin")
	}
	sub, tail := subcommand(args)
	switch sub {
	case "list":
		users, total, err := a.users.List(ctx, dto.PageRequest{})
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
		}
		w.Flush()
		fmt.Printf("total: %d\n", total)
		return nil
	case "create":
		fs := flag.NewFlagSet("users create", flag.ExitOnError)
		name := fs.String("name", "", "nombre")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "contraseña")
		role := fs.String("role", entity.RoleUser, "rol (admin|librarian|user)")
		faculty := fs.String("faculty", "", "facultad")
		_ = fs.Parse(tail)
		u, err := a.users.Create(ctx, dto.CreateUserRequest{
			Name: *name, Email: *email, Password: *password, Role: *role, Faculty: *faculty,
		})
		if err != nil {
			return err
		}
		fmt.Printf("usuario creado: %s\n", u.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("users delete", flag.ExitOnError)
		id := fs.String("id", "", "id del usuario")
		_ = fs.Parse(tail)
		if err := a.users.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Println("usuario eliminado")
		return nil
	default:
		return fmt.Errorf("users: subcomando desconocido %q", sub)
	}
}

func (a *app) cmdBorrows(ctx context.Context, args []string) error {
	sub, tail := subcommand(args)
	switch sub {
	case "list":
		borrows, total, err := a.borrows.List(ctx, dto.PageRequest{})
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tUSUARIO\tLIBRO\tVENCE\tESTADO")
		for _, b := range borrows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.UserID, b.BookID, b.DueAt.Format("2006-01-02"), b.Status)
		}
		w.Flush()
		fmt.Printf("total: %d\n", total)
		return nil
	case "create":
		fs := flag.NewFlagSet("borrows create", flag.ExitOnError)
		userID := fs.String("user", "", "id del usuario")
		bookID := fs.String("book", "", "id del libro")
		days := fs.Int("days", 0, "días de préstamo")
		_ = fs.Parse(tail)
		b, err := a.borrows.Create(ctx, dto.CreateBorrowRequest{UserID: *userID, BookID: *bookID, Days: *days})
		if err != nil {
			return err
		}
		fmt.Printf("préstamo registrado: %s (vence %s)\n", b.ID, b.DueAt.Format("2006-01-02"))
		return nil
	case "return":
		fs := flag.NewFlagSet("borrows return", flag.ExitOnError)
		id := fs.String("id", "", "id del préstamo")
		_ = fs.Parse(tail)
		b, err := a.borrows.Return(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("préstamo devuelto: %s\n", b.ID)
		return nil
	default:
		return fmt.Errorf("borrows: subcomando desconocido %q", sub)
	}
}

func (a *app) cmdUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	path := fs.String("file", "", "ruta del archivo a subir")
	_ = fs.Parse(args)
	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	published, err := a.books.UploadCover(ctx, filepath.Base(*path), f)
	if err != nil {
		return err
	}
	fmt.Printf("archivo subido: %s\n", published)
	return nil
}

func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
