package network

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/vskvj3/listd/internal/core"
	"github.com/vskvj3/listd/internal/utils"
)

type Server struct {
	CommandHandler *core.CommandHandler
	Port           string
}

func NewServer(port string, handler *core.CommandHandler) (*Server, error) {
	logger := utils.GetLogger()

	if handler.Database == nil {
		return nil, fmt.Errorf("database is not initialized")
	}

	// Rebuild the in-memory structures from the binlog before serving.
	if handler.Disk != nil {
		if err := handler.Rebuild(); err != nil {
			logger.Warn("Could not read from persistence: " + err.Error())
		} else {
			logger.Info("Loaded data from persistence")
		}
	}

	logger.Info("TCP server initialized on port " + port)
	return &Server{CommandHandler: handler, Port: port}, nil
}

// Start the TCP server and listen for client connections
func (s *Server) Start() {
	logger := utils.GetLogger()

	// Attempt to bind to the configured port
	listener, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		logger.Warn("Port " + s.Port + " unavailable. Selecting a random port...")
		listener, err = net.Listen("tcp", ":0")
		if err != nil {
			logger.Error("Error starting server: " + err.Error())
			return
		}
	}
	defer listener.Close()
	logger.Info("Server is listening on " + listener.Addr().String())

	// Accept incoming connections
	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Error("Error accepting connection: " + err.Error())
			continue
		}
		logger.Info("Accepted client: " + conn.RemoteAddr().String())
		go s.HandleConnection(conn)
	}
}

// Handle an incoming client connection
func (s *Server) HandleConnection(conn net.Conn) {
	logger := utils.GetLogger()
	defer func() {
		logger.Info("Client disconnected: " + conn.RemoteAddr().String())
		conn.Close()
	}()

	for {
		buffer := make([]byte, 1024)
		n, err := conn.Read(buffer)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info("Client closed the connection: " + conn.RemoteAddr().String())
			} else {
				logger.Error("Error reading from client: " + err.Error())
			}
			return
		}

		request, err := utils.DecodeRequest(buffer[:n])
		if err != nil {
			logger.Error("Failed to decode request: " + err.Error())
			s.sendError(conn, "malformed request")
			continue
		}

		logger.Debug("Received request from client: " + conn.RemoteAddr().String())

		response, err := s.CommandHandler.HandleCommand(request)
		if err != nil {
			s.sendError(conn, err.Error())
			continue
		}
		s.sendResponse(conn, response)
	}
}

// sendResponse serializes the response and sends it to the client
func (s *Server) sendResponse(conn net.Conn, response map[string]interface{}) {
	logger := utils.GetLogger()
	data, err := utils.EncodeResponse(response)
	if err != nil {
		logger.Error("Failed to encode response: " + err.Error())
		return
	}
	_, err = conn.Write(data)
	if err != nil {
		logger.Error("Failed to send response: " + err.Error())
	}
}

// sendError sends an error message to the client
func (s *Server) sendError(conn net.Conn, errorMessage string) {
	response := map[string]interface{}{"status": "ERROR", "message": errorMessage}
	s.sendResponse(conn, response)
}
